package grid

import (
	"github.com/sirupsen/logrus"

	"github.com/tmdict/stargazer-sub002/pkg/logger"
)

// Step — один шаг транзакции: прямое действие и его откат.
// Rollback обязан вернуть сетку ровно в то состояние, в котором она
// была перед Forward, и не имеет права падать: откат — последняя линия
// обороны инварианта.
type Step struct {
	Name     string
	Forward  func() error
	Rollback func()
}

// Transaction — упорядоченный список шагов с общим исполнителем.
//
// Исполнение: шаги выполняются по порядку; если какой-то шаг вернул
// ошибку, уже выполненные шаги откатываются в обратном порядке, и
// транзакция считается проваленной. Наблюдатель снаружи никогда не
// видит наполовину применённую мутацию.
type Transaction struct {
	Name  string
	steps []Step
}

// NewTransaction создает пустую транзакцию с именем для логов.
func NewTransaction(name string) *Transaction {
	return &Transaction{Name: name}
}

// Add добавляет шаг в конец списка.
func (tx *Transaction) Add(step Step) *Transaction {
	tx.steps = append(tx.steps, step)
	return tx
}

// Run выполняет транзакцию. Возвращает ошибку провалившегося шага;
// nil означает фиксацию.
func (tx *Transaction) Run() error {
	log := logger.Log.WithField("tx", tx.Name)

	for i, step := range tx.steps {
		if err := step.Forward(); err == nil {
			continue
		} else {
			log.WithFields(logrus.Fields{
				"step":  step.Name,
				"index": i,
			}).WithError(err).Debug("Transaction step failed, rolling back.")

			// Откатываем уже выполненные шаги в обратном порядке.
			// Шаг, который упал, свои изменения обязан убрать сам.
			for j := i - 1; j >= 0; j-- {
				if tx.steps[j].Rollback != nil {
					tx.steps[j].Rollback()
				}
			}
			return err
		}
	}
	return nil
}
