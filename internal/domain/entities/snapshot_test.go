//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gradlediff/internal/domain/entities"
	"github.com/rios0rios0/gradlediff/internal/versioning"
)

func feignLine(transitive, pinned string) entities.ParsedDependency {
	parsed := entities.ParsedDependency{
		Name:       "feign-core",
		Namespace:  "io.github.openfeign",
		Transitive: entities.NewTransitive(transitive),
		Pinned:     entities.NoVersion(),
	}
	if pinned != "" {
		parsed.Pinned = entities.NewPinned(pinned)
	}
	return parsed
}

func TestSnapshotBuilderMerge(t *testing.T) {
	t.Parallel()

	t.Run("should create a dependency on first sighting", func(t *testing.T) {
		t.Parallel()

		// given
		builder := entities.NewSnapshotBuilder()

		// when
		err := builder.Merge("compileClasspath", feignLine("4.0.3", "4.0.4"))
		snapshot := builder.Build()

		// then
		require.NoError(t, err)
		dependency, found := snapshot.Get("feign-core")
		require.True(t, found)
		assert.Equal(t, "io.github.openfeign", dependency.Namespace)
		require.Len(t, dependency.Entries, 1)
		assert.Equal(t, "compileClasspath", dependency.Entries[0].Configuration)
		assert.Equal(t, []entities.Version{entities.NewTransitive("4.0.3")}, dependency.Entries[0].Versions.Transitive)
		assert.Equal(t, entities.NewPinned("4.0.4"), dependency.Entries[0].Versions.Pinned)
	})

	t.Run("should keep the greatest pinned version whatever the order", func(t *testing.T) {
		t.Parallel()

		for _, order := range [][]string{{"4.0.4", "4.0.5"}, {"4.0.5", "4.0.4"}} {
			// given
			builder := entities.NewSnapshotBuilder()

			// when
			require.NoError(t, builder.Merge("runtimeClasspath", feignLine("4.0.3", order[0])))
			require.NoError(t, builder.Merge("runtimeClasspath", feignLine("4.0.3", order[1])))
			snapshot := builder.Build()

			// then
			dependency, _ := snapshot.Get("feign-core")
			require.Len(t, dependency.Entries, 1)
			assert.Equal(t, entities.NewPinned("4.0.5"), dependency.Entries[0].Versions.Pinned)
			assert.Equal(t, []entities.Version{entities.NewTransitive("4.0.3")}, dependency.Entries[0].Versions.Transitive)
		}
	})

	t.Run("should append unseen transitive versions in sighting order", func(t *testing.T) {
		t.Parallel()

		// given
		builder := entities.NewSnapshotBuilder()

		// when
		require.NoError(t, builder.Merge("compileClasspath", feignLine("4.0.3", "")))
		require.NoError(t, builder.Merge("compileClasspath", feignLine("4.0.1", "")))
		require.NoError(t, builder.Merge("compileClasspath", feignLine("4.0.3", "")))
		snapshot := builder.Build()

		// then
		dependency, _ := snapshot.Get("feign-core")
		assert.Equal(t, []entities.Version{
			entities.NewTransitive("4.0.3"),
			entities.NewTransitive("4.0.1"),
		}, dependency.Entries[0].Versions.Transitive)
		assert.False(t, dependency.Entries[0].Versions.Pinned.IsApplicable())
	})

	t.Run("should add one entry per configuration", func(t *testing.T) {
		t.Parallel()

		// given
		builder := entities.NewSnapshotBuilder()

		// when
		require.NoError(t, builder.Merge("compileClasspath", feignLine("4.0.3", "")))
		require.NoError(t, builder.Merge("runtimeClasspath", feignLine("4.0.3", "4.0.4")))
		snapshot := builder.Build()

		// then
		assert.Equal(t, 1, snapshot.Len())
		dependency, _ := snapshot.Get("feign-core")
		require.Len(t, dependency.Entries, 2)
		assert.Equal(t, "compileClasspath", dependency.Entries[0].Configuration)
		assert.Equal(t, "runtimeClasspath", dependency.Entries[1].Configuration)
	})

	t.Run("should keep the first namespace seen for a name", func(t *testing.T) {
		t.Parallel()

		// given
		builder := entities.NewSnapshotBuilder()
		other := feignLine("1.0.0", "")
		other.Namespace = "com.example"

		// when
		require.NoError(t, builder.Merge("compileClasspath", feignLine("4.0.3", "")))
		require.NoError(t, builder.Merge("testCompileClasspath", other))
		snapshot := builder.Build()

		// then
		dependency, _ := snapshot.Get("feign-core")
		assert.Equal(t, "io.github.openfeign", dependency.Namespace)
	})

	t.Run("should fail when pinned versions cannot be ordered", func(t *testing.T) {
		t.Parallel()

		// given
		builder := entities.NewSnapshotBuilder()
		require.NoError(t, builder.Merge("compileClasspath", feignLine("4.0.3", "4.0.4")))

		// when
		err := builder.Merge("compileClasspath", feignLine("4.0.3", "latest.release"))

		// then
		require.ErrorIs(t, err, versioning.ErrUncomparable)
	})

	t.Run("should refuse merges after Build", func(t *testing.T) {
		t.Parallel()

		// given
		builder := entities.NewSnapshotBuilder()
		builder.Build()

		// when
		err := builder.Merge("compileClasspath", feignLine("4.0.3", ""))

		// then
		require.ErrorIs(t, err, entities.ErrSnapshotBuilt)
	})
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("should return names in first sighting order", func(t *testing.T) {
		t.Parallel()

		// given
		builder := entities.NewSnapshotBuilder()
		for _, name := range []string{"zeta", "alpha", "zeta", "mid"} {
			parsed := feignLine("1.0.0", "")
			parsed.Name = name
			require.NoError(t, builder.Merge("compileClasspath", parsed))
		}

		// when
		names := builder.Build().Names()

		// then
		assert.Equal(t, []string{"zeta", "alpha", "mid"}, names)
	})

	t.Run("should not expose internal state through Get", func(t *testing.T) {
		t.Parallel()

		// given
		builder := entities.NewSnapshotBuilder()
		require.NoError(t, builder.Merge("compileClasspath", feignLine("4.0.3", "")))
		snapshot := builder.Build()

		// when
		dependency, _ := snapshot.Get("feign-core")
		dependency.Entries[0].Versions.Transitive[0] = entities.NewTransitive("9.9.9")

		// then
		again, _ := snapshot.Get("feign-core")
		assert.Equal(t, entities.NewTransitive("4.0.3"), again.Entries[0].Versions.Transitive[0])
	})

	t.Run("should behave as empty when nil", func(t *testing.T) {
		t.Parallel()

		// given
		var snapshot *entities.Snapshot

		// when
		_, found := snapshot.Get("feign-core")

		// then
		assert.False(t, found)
		assert.Zero(t, snapshot.Len())
		assert.Empty(t, snapshot.Dependencies())
	})
}
