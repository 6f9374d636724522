package service_test

import (
	"errors"
	"strings"
	"testing"

	apperrors "github.com/CyberToe/HockeyAnalyst-sub000/internal/errors"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTeamCode(t *testing.T) {
	t.Run("produces codes of the right shape", func(t *testing.T) {
		never := func(string) (bool, error) { return false, nil }

		for i := 0; i < 50; i++ {
			code, err := service.GenerateTeamCode(never)
			require.NoError(t, err)
			assert.Len(t, code, service.TeamCodeLength)
			for _, r := range code {
				assert.True(t, strings.ContainsRune(service.TeamCodeAlphabet, r),
					"code %q contains %q outside the alphabet", code, r)
			}
		}
	})

	t.Run("retries on collision", func(t *testing.T) {
		calls := 0
		takenOnce := func(string) (bool, error) {
			calls++
			return calls == 1, nil
		}

		code, err := service.GenerateTeamCode(takenOnce)
		require.NoError(t, err)
		assert.Len(t, code, service.TeamCodeLength)
		assert.Equal(t, 2, calls)
	})

	t.Run("gives up after exhausting retries", func(t *testing.T) {
		always := func(string) (bool, error) { return true, nil }

		_, err := service.GenerateTeamCode(always)
		assert.ErrorIs(t, err, apperrors.ErrTeamCodeExhausted)
	})

	t.Run("propagates lookup errors", func(t *testing.T) {
		boom := errors.New("db down")
		failing := func(string) (bool, error) { return false, boom }

		_, err := service.GenerateTeamCode(failing)
		assert.ErrorIs(t, err, boom)
	})
}
