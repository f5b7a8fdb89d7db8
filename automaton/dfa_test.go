package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DFA_AddState_rejectsDuplicateName(t *testing.T) {
	assert := assert.New(t)
	dfa := NewDFA[string]()

	assert.True(dfa.AddState("s0", "value0"))
	assert.False(dfa.AddState("s0", "value1"), "adding a state under an existing name must report no-op")
	assert.Equal("value0", dfa.GetValue("s0"), "first value must be preserved")
}

func Test_DFA_AddTransition_andNext(t *testing.T) {
	assert := assert.New(t)
	dfa := NewDFA[string]()
	dfa.AddState("s0", "start")
	dfa.AddState("s1", "next")
	dfa.AddTransition("s0", "a", "s1")

	assert.Equal("s1", dfa.Next("s0", "a"))
	assert.Equal("", dfa.Next("s0", "b"), "undefined transition returns empty string")
}

func Test_DFA_NumberStates_startBecomesZero(t *testing.T) {
	assert := assert.New(t)
	dfa := NewDFA[string]()
	dfa.Start = "zzz"
	dfa.AddState("zzz", "start")
	dfa.AddState("aaa", "other")
	dfa.AddTransition("zzz", "x", "aaa")

	dfa.NumberStates()

	assert.Equal("0", dfa.Start)
	assert.Equal("start", dfa.GetValue("0"))
	to := dfa.Next("0", "x")
	assert.NotEqual("zzz", to)
	assert.Equal("other", dfa.GetValue(to))
}

func Test_DFA_States_returnsAllStateValues(t *testing.T) {
	assert := assert.New(t)
	dfa := NewDFA[string]()
	dfa.AddState("s0", "v0")
	dfa.AddState("s1", "v1")

	all := dfa.States()
	assert.Equal(2, all.Len())
	assert.Equal("v0", all.Get("s0"))
	assert.Equal("v1", all.Get("s1"))
}
