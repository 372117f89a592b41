package podium_test

import (
	"testing"

	utils "github.com/minaorangina/crazycircus/internal"
	"github.com/minaorangina/crazycircus/podium"
	"github.com/stretchr/testify/assert"
)

func TestStateCopy(t *testing.T) {
	src := podium.NewState(utils.Tokens("LION", "OURS"), utils.Tokens("ELEPHANT"))

	t.Run("copy equals its source", func(t *testing.T) {
		cp := src.Copy()
		utils.AssertTrue(t, cp.Equal(&src))
		utils.AssertTrue(t, src.Equal(&cp))
	})

	t.Run("copy keeps top-to-bottom order", func(t *testing.T) {
		cp := src.Copy()
		utils.AssertPodium(t, &cp, podium.Blue, "OURS", "LION")
		utils.AssertPodium(t, &cp, podium.Red, "ELEPHANT")
	})

	t.Run("mutating the copy leaves the source untouched", func(t *testing.T) {
		cp := src.Copy()
		top, err := cp.Podium(podium.Blue).Pop()
		utils.AssertNoError(t, err)
		cp.Podium(podium.Red).Push(top)
		cp.Podium(podium.Red).Push("ZEBRE")

		utils.AssertPodium(t, &src, podium.Blue, "OURS", "LION")
		utils.AssertPodium(t, &src, podium.Red, "ELEPHANT")
		assert.False(t, cp.Equal(&src))
	})
}

func TestStateEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b podium.State
		want bool
	}{
		{
			"identical",
			podium.NewState(utils.Tokens("A", "B"), utils.Tokens("C")),
			podium.NewState(utils.Tokens("A", "B"), utils.Tokens("C")),
			true,
		},
		{
			"same tokens, different order",
			podium.NewState(utils.Tokens("A", "B"), utils.Tokens("C")),
			podium.NewState(utils.Tokens("B", "A"), utils.Tokens("C")),
			false,
		},
		{
			"different split",
			podium.NewState(utils.Tokens("A", "B"), utils.Tokens("C")),
			podium.NewState(utils.Tokens("A"), utils.Tokens("B", "C")),
			false,
		},
		{
			"both empty",
			podium.NewState(nil, nil),
			podium.NewState(nil, nil),
			true,
		},
		{
			"podiums swapped",
			podium.NewState(utils.Tokens("A"), nil),
			podium.NewState(nil, utils.Tokens("A")),
			false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.a.Equal(&c.b))
			assert.Equal(t, c.want, c.b.Equal(&c.a))
		})
	}

	t.Run("nil is never equal", func(t *testing.T) {
		s := podium.NewState(nil, nil)
		assert.False(t, s.Equal(nil))
	})
}

func TestStateString(t *testing.T) {
	s := podium.NewState(utils.Tokens("LION", "OURS"), utils.Tokens("ELEPHANT"))
	utils.AssertEqual(t, s.String(), "blue=[LION OURS] red=[ELEPHANT]")
	utils.AssertEqual(t, s.Len(), 3)
	utils.AssertEqual(t, podium.Red.String(), "RED")
}
