// file: models/challenge_test.go
package models

import (
	"testing"
)

func TestRoundOfIsTotalOverCatalog(t *testing.T) {
	for _, ch := range Round1Challenges {
		r, ok := RoundOf(ch.Title)
		if !ok {
			t.Fatalf("catalog challenge %q has no round", ch.Title)
		}
		if r != Round1 {
			t.Fatalf("challenge %q classified as round %d, declared in round 1", ch.Title, r)
		}
	}
	for _, ch := range Round2Challenges {
		r, ok := RoundOf(ch.Title)
		if !ok {
			t.Fatalf("catalog challenge %q has no round", ch.Title)
		}
		if r != Round2 {
			t.Fatalf("challenge %q classified as round %d, declared in round 2", ch.Title, r)
		}
	}
}

func TestRoundOfRejectsUnknownTitle(t *testing.T) {
	// 未知标题必须报错，不能默默归入 Round 2
	if _, ok := RoundOf("Hodor"); ok {
		t.Fatal("unknown title must not classify into any round")
	}
	if _, ok := FindChallenge("Hodor"); ok {
		t.Fatal("unknown title must not resolve to a challenge")
	}
}

func TestCatalogTitlesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, ch := range append(append([]Challenge{}, Round1Challenges...), Round2Challenges...) {
		if seen[ch.Title] {
			t.Fatalf("duplicate challenge title %q", ch.Title)
		}
		seen[ch.Title] = true
		if ch.Points == 0 {
			t.Fatalf("challenge %q has zero points", ch.Title)
		}
		if len(ch.FlagHash) != 64 {
			t.Fatalf("challenge %q flag hash is not a sha256 hex digest", ch.Title)
		}
	}
}

func TestDragonsWhisperIsTheOpener(t *testing.T) {
	ch, ok := FindChallenge("The Dragon's Whisper")
	if !ok {
		t.Fatal("The Dragon's Whisper missing from catalog")
	}
	if ch.Points != 100 {
		t.Fatalf("The Dragon's Whisper worth %d points, want 100", ch.Points)
	}
	if r, _ := RoundOf(ch.Title); r != Round1 {
		t.Fatalf("The Dragon's Whisper classified into round %d, want 1", r)
	}
}

func TestRoundTitlesMatchesCatalog(t *testing.T) {
	cases := []struct {
		round Round
		want  int
	}{
		{Round1, len(Round1Challenges)},
		{Round2, len(Round2Challenges)},
	}
	for _, tc := range cases {
		titles := RoundTitles(tc.round)
		if len(titles) != tc.want {
			t.Fatalf("round %d: got %d titles, want %d", tc.round, len(titles), tc.want)
		}
		for _, title := range titles {
			if r, _ := RoundOf(title); r != tc.round {
				t.Fatalf("title %q listed for round %d but classifies as %d", title, tc.round, r)
			}
		}
	}
}

func TestComputeScore(t *testing.T) {
	cases := []struct {
		name   string
		solves []Solve
		want   uint
	}{
		{"empty ledger", nil, 0},
		{"single solve", []Solve{{Points: 100}}, 100},
		{"sums all entries", []Solve{{Points: 100}, {Points: 250}, {Points: 150}}, 500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeScore(tc.solves); got != tc.want {
				t.Fatalf("ComputeScore = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestValidRound(t *testing.T) {
	if _, ok := ValidRound(0); ok {
		t.Fatal("round 0 must be invalid")
	}
	if _, ok := ValidRound(3); ok {
		t.Fatal("round 3 must be invalid")
	}
	if r, ok := ValidRound(2); !ok || r != Round2 {
		t.Fatal("round 2 must be valid")
	}
}
