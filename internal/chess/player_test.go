package chess

import (
	stderrors "errors"
	"testing"

	"github.com/tbaxter/chesslib/internal/errors"
)

func TestNamedPlayer(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := NamedPlayer(White, "Smith", 1500)
		if err != nil {
			t.Fatalf("NamedPlayer error: %v", err)
		}
		if p.LastName != "Smith" || p.Rating != 1500 || p.Colour != White {
			t.Errorf("NamedPlayer = %+v; want Smith/1500/White", p)
		}
	})

	t.Run("blank name", func(t *testing.T) {
		for _, name := range []string{"", "   ", "\t"} {
			if _, err := NamedPlayer(Black, name, 0); !stderrors.Is(err, errors.ErrEmptyName) {
				t.Errorf("NamedPlayer(%q) error = %v; want ErrEmptyName", name, err)
			}
		}
	})
}

func TestPlayerFullName(t *testing.T) {
	tests := []struct {
		name   string
		player Player
		want   string
	}{
		{
			"all parts",
			Player{LastName: "Smith", FirstName: "John", NamePrefix: "Dr.", NameSuffix: "III"},
			"Dr. Smith, John III",
		},
		{
			"last name only",
			Player{LastName: "Smith"},
			"Smith",
		},
		{
			"last and first",
			Player{LastName: "Smith", FirstName: "John"},
			"Smith, John",
		},
		{
			"anonymous",
			Player{},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.player.FullName(); got != tt.want {
				t.Errorf("FullName() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestPlayerString(t *testing.T) {
	tests := []struct {
		name   string
		player Player
		want   string
	}{
		{
			"rated with all parts",
			Player{Colour: White, LastName: "Smith", FirstName: "John", NamePrefix: "Dr.", NameSuffix: "III", Rating: 1500},
			"White: Dr. Smith, John III (1500)",
		},
		{
			"unrated",
			Player{Colour: Black, LastName: "Smith"},
			"Black: Smith (unrated)",
		},
		{
			"anonymous",
			Player{Colour: White},
			"White",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.player.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}
}
