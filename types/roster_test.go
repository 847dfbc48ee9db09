package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPupilCompare(t *testing.T) {
	tests := []struct {
		name string
		p    Pupil
		q    Pupil
		want int
	}{
		{"name orders before", Pupil{ID: 1, Name: "Amy"}, Pupil{ID: 2, Name: "Zoe"}, -1},
		{"name orders after", Pupil{ID: 1, Name: "Zoe"}, Pupil{ID: 2, Name: "Amy"}, 1},
		{"uppercase sorts before lowercase", Pupil{ID: 1, Name: "Bob"}, Pupil{ID: 2, Name: "alice"}, -1},
		{"equal names break tie by id", Pupil{ID: 1, Name: "Amy"}, Pupil{ID: 2, Name: "Amy"}, -1},
		{"equal names reversed ids", Pupil{ID: 2, Name: "Amy"}, Pupil{ID: 1, Name: "Amy"}, 1},
		{"identical", Pupil{ID: 1, Name: "Amy"}, Pupil{ID: 1, Name: "Amy"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.p.Compare(tt.q))
		})
	}
}

func TestPupilCompareAntisymmetric(t *testing.T) {
	pupils := []Pupil{
		{ID: 1, Name: "Amy"},
		{ID: 2, Name: "Amy"},
		{ID: 3, Name: "Bob"},
		{ID: 4, Name: "alice"},
	}

	for _, p := range pupils {
		for _, q := range pupils {
			require.Equal(t, p.Compare(q), -q.Compare(p), "Compare(%v,%v) must be antisymmetric", p, q)
		}
	}
}
