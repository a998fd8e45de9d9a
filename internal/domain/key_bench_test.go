package domain

import "testing"

var sinkKey SkillKey
var sinkChar CharacterID

func BenchmarkPackTargetKey(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkKey = PackTargetKey(CharacterID(i&0xFFFF), uint8(i&3), TeamAlly)
	}
}

func BenchmarkSkillKeyUnpack(b *testing.B) {
	k := PackTargetKey(12345, 2, TeamEnemy)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkChar = k.Character()
	}
}
