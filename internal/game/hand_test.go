package game

import (
	"testing"

	"github.com/lox/blackjack/internal/deck"
)

func TestHandValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cards string
		value int
		soft  bool
	}{
		{"", 0, false},
		{"As", 11, true},
		{"AsKh", 21, true},
		{"AsAh", 12, true},
		{"AsAhAd", 13, true},
		{"AsAh9d", 21, true},
		{"As5h6d", 12, false},
		{"Ts6h", 16, false},
		{"TsQhKd", 30, false},
		{"AsAhTdKc", 22, false},
		{"9s9h", 18, false},
		{"2s3h4d5c6s", 20, false},
	}

	for _, tt := range tests {
		h := hand(tt.cards)
		if got := h.Value(); got != tt.value {
			t.Errorf("%s: Value() = %d, want %d", tt.cards, got, tt.value)
		}
		if got := h.IsSoft(); got != tt.soft {
			t.Errorf("%s: IsSoft() = %v, want %v", tt.cards, got, tt.soft)
		}
	}
}

func TestHandValueIgnoresHiddenCard(t *testing.T) {
	t.Parallel()
	h := Hand{deck.Hidden, deck.MustParseCards("9s")[0]}
	if got := h.Value(); got != 9 {
		t.Errorf("Value() = %d, want 9", got)
	}
}

func TestHandIsNatural(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cards string
		want  bool
	}{
		{"AsKh", true},
		{"QdAc", true},
		{"AsTh", true},
		{"AsJh", true},
		{"As9h5d", false},
		{"AsAh", false},
		{"KsQh", false},
		{"As5hTd", false},
	}
	for _, tt := range tests {
		if got := hand(tt.cards).IsNatural(); got != tt.want {
			t.Errorf("%s: IsNatural() = %v, want %v", tt.cards, got, tt.want)
		}
	}
}

func TestHandIsPairComparesWorth(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cards string
		want  bool
	}{
		{"8s8h", true},
		{"KsJh", true},
		{"TsQh", true},
		{"AsAh", true},
		{"As2h", false},
		{"8s8h8d", false},
	}
	for _, tt := range tests {
		if got := hand(tt.cards).IsPair(); got != tt.want {
			t.Errorf("%s: IsPair() = %v, want %v", tt.cards, got, tt.want)
		}
	}
}

func TestHandCloneDoesNotAlias(t *testing.T) {
	t.Parallel()
	h := hand("AsKh")
	c := h.Clone()
	c[0] = deck.Hidden
	if h[0].IsHidden() {
		t.Error("mutating a clone changed the original hand")
	}
}

func TestHandString(t *testing.T) {
	t.Parallel()
	if got := hand("AsKh").String(); got != "[A♠, K♥]" {
		t.Errorf("String() = %q", got)
	}
	if got := (Hand{}).String(); got != "[]" {
		t.Errorf("empty String() = %q", got)
	}
}

func TestParseAction(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want Action
	}{
		{"hit", Hit},
		{"H", Hit},
		{"stand", Stand},
		{"double_down", DoubleDown},
		{"DOUBLE DOWN", DoubleDown},
		{"d", DoubleDown},
		{" surrender ", Surrender},
		{"split", Split},
	}
	for _, tt := range tests {
		got, err := ParseAction(tt.in)
		if err != nil {
			t.Errorf("ParseAction(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseAction("fold"); err == nil {
		t.Error("expected error for unknown action")
	}
}
