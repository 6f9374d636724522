package service

import (
	"crypto/rand"
	"fmt"
	"math/big"

	apperrors "github.com/CyberToe/HockeyAnalyst-sub000/internal/errors"
)

// TeamCodeAlphabet excludes visually confusable characters (0/O, 1/I) so
// codes survive being read aloud or scribbled on a whiteboard.
const TeamCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// TeamCodeLength is the fixed length of every join code
const TeamCodeLength = 7

// maxCodeAttempts bounds the retry loop against a shrinking namespace
const maxCodeAttempts = 10

// GenerateTeamCode draws a random join code and retries on collision, where
// taken reports whether a candidate is already in use.
func GenerateTeamCode(taken func(code string) (bool, error)) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := randomTeamCode()
		if err != nil {
			return "", err
		}
		exists, err := taken(code)
		if err != nil {
			return "", fmt.Errorf("failed to check team code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", apperrors.ErrTeamCodeExhausted
}

func randomTeamCode() (string, error) {
	buf := make([]byte, TeamCodeLength)
	max := big.NewInt(int64(len(TeamCodeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random code: %w", err)
		}
		buf[i] = TeamCodeAlphabet[n.Int64()]
	}
	return string(buf), nil
}
