package deck

import "testing"

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "natural",
			input: "AsKh",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
			},
		},
		{
			name:  "low cards",
			input: "5h4d3c2s",
			expected: []Card{
				{Suit: Hearts, Rank: Five},
				{Suit: Diamonds, Rank: Four},
				{Suit: Clubs, Rank: Three},
				{Suit: Spades, Rank: Two},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDtc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Ten},
			},
		},
		{
			name:    "invalid rank",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AsKx",
			wantErr: true,
		},
		{
			name:    "odd length",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCards() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !cardsEqual(got, tt.expected) {
				t.Errorf("ParseCards() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustParseCards(t *testing.T) {
	cards := MustParseCards("AsKs")
	expected := []Card{
		{Suit: Spades, Rank: Ace},
		{Suit: Spades, Rank: King},
	}
	if !cardsEqual(cards, expected) {
		t.Errorf("MustParseCards() = %v, want %v", cards, expected)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseCards() should panic on invalid input")
		}
	}()
	MustParseCards("invalid")
}

func TestRankWorth(t *testing.T) {
	tests := []struct {
		rank Rank
		want int
	}{
		{Two, 2}, {Five, 5}, {Nine, 9},
		{Ten, 10}, {Jack, 10}, {Queen, 10}, {King, 10},
		{Ace, 11},
		{Rank(0), 0},
	}
	for _, tt := range tests {
		if got := tt.rank.Worth(); got != tt.want {
			t.Errorf("%s.Worth() = %d, want %d", tt.rank.Name(), got, tt.want)
		}
	}
}

func TestCardComparesByWorthOnly(t *testing.T) {
	jack := NewCard(Spades, Jack)
	king := NewCard(Hearts, King)
	nine := NewCard(Spades, Nine)

	if !jack.Equal(king) {
		t.Error("Jack and King should compare equal by worth")
	}
	if jack.Rank == king.Rank {
		t.Error("Jack and King must keep distinct identities")
	}
	if !nine.Less(jack) || jack.Less(nine) {
		t.Error("Nine should order below Jack")
	}
}

func TestHiddenCard(t *testing.T) {
	if !Hidden.IsHidden() {
		t.Fatal("zero card should be hidden")
	}
	if Hidden.String() != "<HIDDEN>" {
		t.Errorf("Hidden.String() = %q", Hidden.String())
	}
	if Hidden.Worth() != 0 {
		t.Errorf("Hidden.Worth() = %d, want 0", Hidden.Worth())
	}
	if got := NewCard(Clubs, Ten).String(); got != "T♣" {
		t.Errorf("String() = %q, want T♣", got)
	}
}

func cardsEqual(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Rank != b[i].Rank || a[i].Suit != b[i].Suit {
			return false
		}
	}
	return true
}
