package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p PlacePayload) Validate() error {
	if p.HexID <= 0 {
		return errors.New("hexId is required")
	}
	if p.CharacterID <= 0 {
		return errors.New("characterId is required")
	}
	if p.Team == "" {
		return errors.New("team is required")
	}
	return nil
}

func (p RemovePayload) Validate() error {
	if p.HexID <= 0 {
		return errors.New("hexId is required")
	}
	return nil
}

func (p MovePayload) Validate() error {
	if p.FromHexID <= 0 || p.ToHexID <= 0 {
		return errors.New("fromHexId and toHexId are required")
	}
	if p.FromHexID == p.ToHexID {
		return errors.New("move destination equals the source")
	}
	if p.CharacterID <= 0 {
		return errors.New("characterId is required")
	}
	return nil
}

func (p SwapPayload) Validate() error {
	if p.HexA <= 0 || p.HexB <= 0 {
		return errors.New("hexA and hexB are required")
	}
	if p.HexA == p.HexB {
		return errors.New("cannot swap a hex with itself")
	}
	return nil
}

func (p SavePayload) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func (p LoadPayload) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	return nil
}
