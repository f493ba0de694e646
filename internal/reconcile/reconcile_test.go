package reconcile

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOracle struct {
	exists   map[string]bool
	symlinks map[string]bool
}

func (o *fakeOracle) Exists(p string) bool    { return o.exists[p] }
func (o *fakeOracle) IsSymlink(p string) bool { return o.symlinks[p] }

func oracleFor(existing ...string) *fakeOracle {
	o := &fakeOracle{exists: map[string]bool{}, symlinks: map[string]bool{}}
	for _, p := range existing {
		o.exists[p] = true
	}
	return o
}

func TestReconcile_TableDriven(t *testing.T) {
	cases := []struct {
		name     string
		declared []string
		status   Status
		oracle   *fakeOracle
		expect   func(t *testing.T, r *Result, err error)
	}{
		{
			name:     "all declared paths present commit as is",
			declared: []string{"a.txt", "b.txt"},
			status:   Status{"a.txt": FlagModified, "b.txt": FlagModified},
			oracle:   oracleFor("a.txt", "b.txt"),
			expect: func(t *testing.T, r *Result, err error) {
				require.NoError(t, err)
				assert.ElementsMatch(t, []string{"a.txt", "b.txt"}, r.FinalPaths.ToSlice())
				assert.Empty(t, r.UnincludedModifications)
				assert.Empty(t, r.MissingPaths)
			},
		},
		{
			name:     "local edit outside the revision is advisory",
			declared: []string{"a.txt", "b.txt"},
			status:   Status{"a.txt": FlagModified, "b.txt": FlagModified, "c.txt": FlagModified},
			oracle:   oracleFor("a.txt", "b.txt", "c.txt"),
			expect: func(t *testing.T, r *Result, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"c.txt"}, r.UnincludedModifications)
				assert.ElementsMatch(t, []string{"a.txt", "b.txt"}, r.FinalPaths.ToSlice())
			},
		},
		{
			name:     "declared directory with excluded descendant conflicts",
			declared: []string{"dir/"},
			status:   Status{"dir/x.txt": FlagModified},
			oracle:   oracleFor("dir/"),
			expect: func(t *testing.T, r *Result, err error) {
				var conflict *ConflictError
				require.ErrorAs(t, err, &conflict)
				assert.Equal(t, "dir/", conflict.Dir)
				assert.Equal(t, "dir/x.txt", conflict.Path)
				assert.Nil(t, r)
			},
		},
		{
			name:     "single missing path empties the commit",
			declared: []string{"gone.txt"},
			status:   Status{},
			oracle:   oracleFor(),
			expect: func(t *testing.T, r *Result, err error) {
				var empty *EmptyCommitError
				require.ErrorAs(t, err, &empty)
				assert.Equal(t, 1, empty.Declared)
			},
		},
		{
			name:     "staged deletion is retained not reported missing",
			declared: []string{"del.txt"},
			status:   Status{"del.txt": FlagDeleted},
			oracle:   oracleFor(),
			expect: func(t *testing.T, r *Result, err error) {
				require.NoError(t, err)
				assert.ElementsMatch(t, []string{"del.txt"}, r.FinalPaths.ToSlice())
				assert.Empty(t, r.MissingPaths)
			},
		},
		{
			name:     "dangling symlink is retained",
			declared: []string{"link"},
			status:   Status{},
			oracle: &fakeOracle{
				exists:   map[string]bool{},
				symlinks: map[string]bool{"link": true},
			},
			expect: func(t *testing.T, r *Result, err error) {
				require.NoError(t, err)
				assert.ElementsMatch(t, []string{"link"}, r.FinalPaths.ToSlice())
				assert.Empty(t, r.MissingPaths)
			},
		},
		{
			name:     "missing path is dropped but commit survives",
			declared: []string{"a.txt", "gone.txt"},
			status:   Status{"a.txt": FlagModified},
			oracle:   oracleFor("a.txt"),
			expect: func(t *testing.T, r *Result, err error) {
				require.NoError(t, err)
				assert.ElementsMatch(t, []string{"a.txt"}, r.FinalPaths.ToSlice())
				assert.Equal(t, []string{"gone.txt"}, r.MissingPaths)
			},
		},
		{
			name:     "conflict wins over advisories",
			declared: []string{"dir/", "gone.txt"},
			status:   Status{"dir/x.txt": FlagModified, "other.txt": FlagModified},
			oracle:   oracleFor("dir/"),
			expect: func(t *testing.T, r *Result, err error) {
				var conflict *ConflictError
				require.ErrorAs(t, err, &conflict)
			},
		},
		{
			name:     "deleted flag on an existing path still commits",
			declared: []string{"a.txt"},
			status:   Status{"a.txt": FlagDeleted},
			oracle:   oracleFor("a.txt"),
			expect: func(t *testing.T, r *Result, err error) {
				require.NoError(t, err)
				assert.ElementsMatch(t, []string{"a.txt"}, r.FinalPaths.ToSlice())
			},
		},
		{
			name:     "unversioned local file under declared directory conflicts",
			declared: []string{"src/"},
			status:   Status{"src/scratch.go": FlagUnversioned},
			oracle:   oracleFor("src/"),
			expect: func(t *testing.T, r *Result, err error) {
				var conflict *ConflictError
				require.ErrorAs(t, err, &conflict)
				assert.Equal(t, "src/", conflict.Dir)
				assert.Equal(t, "src/scratch.go", conflict.Path)
			},
		},
		{
			name:     "sibling with shared name prefix is not a descendant",
			declared: []string{"dir"},
			status:   Status{"dir2/x.txt": FlagModified},
			oracle:   oracleFor("dir"),
			expect: func(t *testing.T, r *Result, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"dir2/x.txt"}, r.UnincludedModifications)
			},
		},
		{
			name:     "status path matching declared trailing-slash entry is a member",
			declared: []string{"dir/"},
			status:   Status{"dir": FlagModified},
			oracle:   oracleFor("dir/"),
			expect: func(t *testing.T, r *Result, err error) {
				require.NoError(t, err)
				assert.Empty(t, r.UnincludedModifications)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			declared := mapset.NewSet(tc.declared...)
			r, err := Reconcile(declared, tc.status, tc.oracle)
			tc.expect(t, r, err)
		})
	}
}

// Every final set must be a subset of the declared set, whatever the inputs.
func TestReconcile_FinalPathsSubsetOfDeclared(t *testing.T) {
	declared := mapset.NewSet("a.txt", "b/c.txt", "del.txt", "gone.txt")
	status := Status{
		"a.txt":   FlagModified,
		"del.txt": FlagDeleted,
		"x.txt":   FlagModified,
	}
	oracle := oracleFor("a.txt", "b/c.txt")

	r, err := Reconcile(declared, status, oracle)
	require.NoError(t, err)
	assert.True(t, r.FinalPaths.IsSubset(declared))
}

func TestReconcile_DeterministicOrdering(t *testing.T) {
	declared := mapset.NewSet("z.txt", "a.txt", "m.txt")
	status := Status{
		"b.txt": FlagModified,
		"y.txt": FlagModified,
		"c.txt": FlagUnversioned,
	}
	oracle := oracleFor("a.txt")

	r, err := Reconcile(declared, status, oracle)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.txt", "c.txt", "y.txt"}, r.UnincludedModifications)
	assert.Equal(t, []string{"m.txt", "z.txt"}, r.MissingPaths)
	assert.Equal(t, []string{"a.txt"}, r.SortedFinalPaths())
}

func TestFlag_HasAndString(t *testing.T) {
	f := FlagModified | FlagDeleted
	assert.True(t, f.Has(FlagModified))
	assert.True(t, f.Has(FlagDeleted))
	assert.False(t, f.Has(FlagAdded))
	assert.Equal(t, "modified+deleted", f.String())
	assert.Equal(t, "none", Flag(0).String())
}

func TestIsPathUnder(t *testing.T) {
	assert.True(t, isPathUnder("dir", "dir/x.txt"))
	assert.True(t, isPathUnder("dir/", "dir/x/y.txt"))
	assert.False(t, isPathUnder("dir", "dir"))
	assert.False(t, isPathUnder("dir", "dir2/x.txt"))
	assert.False(t, isPathUnder("", "x.txt"))
	assert.False(t, isPathUnder(".", "x.txt"))
}
