//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gradlediff/internal/domain/entities"
	"github.com/rios0rios0/gradlediff/internal/versioning"
)

func TestVersion(t *testing.T) {
	t.Parallel()

	t.Run("should treat the zero value as not applicable", func(t *testing.T) {
		t.Parallel()

		// given
		var version entities.Version

		// when
		applicable := version.IsApplicable()

		// then
		assert.False(t, applicable)
		assert.Equal(t, entities.NoVersion(), version)
		assert.Equal(t, "N/A", version.String())
	})

	t.Run("should distinguish versions by kind and text", func(t *testing.T) {
		t.Parallel()

		// given
		transitive := entities.NewTransitive("1.0.0")
		pinned := entities.NewPinned("1.0.0")

		// when
		equal := transitive == pinned

		// then
		assert.False(t, equal)
		assert.Equal(t, entities.NewTransitive("1.0.0"), transitive)
		assert.Equal(t, entities.KindPinned, pinned.Kind())
		assert.Equal(t, "1.0.0", pinned.String())
	})

	t.Run("should refuse to order an absent version", func(t *testing.T) {
		t.Parallel()

		// given
		present := entities.NewPinned("1.0.0")

		// when
		_, err := present.IsGreaterThan(entities.NoVersion())

		// then
		require.ErrorIs(t, err, versioning.ErrUncomparable)
	})
}

func TestGreatest(t *testing.T) {
	t.Parallel()

	t.Run("should return the greatest of several versions", func(t *testing.T) {
		t.Parallel()

		// given
		versions := []entities.Version{
			entities.NewTransitive("1.2.3"),
			entities.NewTransitive("1.3.0"),
			entities.NewTransitive("1.2.4"),
		}

		// when
		greatest, err := entities.Greatest(versions)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.NewTransitive("1.3.0"), greatest)
	})

	t.Run("should skip absent versions", func(t *testing.T) {
		t.Parallel()

		// given
		versions := []entities.Version{entities.NoVersion(), entities.NewTransitive("2.0.0"), entities.NoVersion()}

		// when
		greatest, err := entities.Greatest(versions)

		// then
		require.NoError(t, err)
		assert.Equal(t, "2.0.0", greatest.String())
	})

	t.Run("should return not applicable when nothing is applicable", func(t *testing.T) {
		t.Parallel()

		// given
		versions := []entities.Version{entities.NoVersion()}

		// when
		greatest, err := entities.Greatest(versions)

		// then
		require.NoError(t, err)
		assert.False(t, greatest.IsApplicable())
	})

	t.Run("should fail on uncomparable versions", func(t *testing.T) {
		t.Parallel()

		// given
		versions := []entities.Version{entities.NewTransitive("1.0.0"), entities.NewTransitive("latest.release")}

		// when
		_, err := entities.Greatest(versions)

		// then
		require.ErrorIs(t, err, versioning.ErrUncomparable)
	})
}
