package results_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphbench/results"
)

type AggregateSuite struct {
	suite.Suite
	resultsRoot string
	inputsRoot  string
}

func (s *AggregateSuite) SetupTest() {
	root := s.T().TempDir()
	s.resultsRoot = filepath.Join(root, "out", "results")
	s.inputsRoot = filepath.Join(root, "data")
	s.Require().NoError(os.MkdirAll(s.resultsRoot, 0o755))
	s.Require().NoError(os.MkdirAll(s.inputsRoot, 0o755))
}

func (s *AggregateSuite) write(path, content string) {
	s.Require().NoError(os.MkdirAll(filepath.Dir(path), 0o755))
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
}

func (s *AggregateSuite) input(name, content string) {
	s.write(filepath.Join(s.inputsRoot, name), content)
}

func (s *AggregateSuite) record(alg, name, content string) {
	s.write(filepath.Join(s.resultsRoot, alg, name), content)
}

func (s *AggregateSuite) opts() results.Options {
	return results.Options{ResultsRoot: s.resultsRoot, InputsRoot: s.inputsRoot}
}

func (s *AggregateSuite) TestReport() {
	require := require.New(s.T())
	s.input("star.txt", "4 3\n1 2\n1 3\n1 4\n")
	s.input("cycle.col.txt", "3 3\n1 2\n2 3\n3 1\n")
	s.record("greedy", "star.txt", "01/01/2020 00:00:00.000\n2 3\n01/01/2020 00:00:02.500\n")
	s.record("greedy", "cycle.col.txt", "01/01/2020 00:00:00.000\nerror: out of memory\n")
	s.record("exact", "star.txt", "01/01/2020 00:00:00.000\n2 3\nprogress\n01/01/2020 00:00:00.125\n")
	// a stray file at the results root is not an algorithm
	s.write(filepath.Join(s.resultsRoot, "README"), "notes")

	tbl, err := results.Aggregate(s.opts())
	require.NoError(err)

	var buf bytes.Buffer
	require.NoError(tbl.WriteTSV(&buf))
	want := "name\texact.result\texact.maxc\texact.time\tgreedy.result\tgreedy.maxc\tgreedy.time\tn\tm\tmax.deg\n" +
		"cycle\tNA\tNA\tNA\tERR\tERR\tERR\t3\t3\t2\n" +
		"star\t3\t2\t0.125\t3\t2\t2.5\t4\t3\t3\n"
	require.Equal(want, buf.String())
}

func (s *AggregateSuite) TestMalformedRecordDegradesOneCell() {
	require := require.New(s.T())
	s.input("p.txt", "2 1\n1 2\n")
	s.record("a", "p.txt", "garbage\n1 1\ngarbage\n")
	s.record("b", "p.txt", "01/01/2020 00:00:00.000\n1 1\n01/01/2020 00:00:01.000\n")

	tbl, err := results.Aggregate(s.opts())
	require.NoError(err)
	require.Len(tbl.Rows, 1)
	require.Equal(results.ERRCell, tbl.Rows[0].Cells[0])
	require.Equal(results.Cell{Result: "1", Secondary: "1", Time: "1"}, tbl.Rows[0].Cells[1])
}

func (s *AggregateSuite) TestBadInputGraph() {
	require := require.New(s.T())
	s.input("broken.txt", "3 1\n1 x\n")
	s.Require().NoError(os.MkdirAll(filepath.Join(s.resultsRoot, "a"), 0o755))

	tbl, err := results.Aggregate(s.opts())
	require.NoError(err)
	require.Equal(results.ERRStats, tbl.Rows[0].Stats)
	require.Equal(results.NACell, tbl.Rows[0].Cells[0])

	strict := s.opts()
	strict.StrictInputs = true
	_, err = results.Aggregate(strict)
	require.ErrorIs(err, results.ErrInputGraph)
}

func (s *AggregateSuite) TestEmptyGraphStats() {
	require := require.New(s.T())
	s.input("empty.txt", "5 0\n")

	tbl, err := results.Aggregate(s.opts())
	require.NoError(err)
	require.Empty(tbl.Algorithms)
	require.Equal(results.Stats{N: "5", M: "0", MaxDegree: "0"}, tbl.Rows[0].Stats)
}

func (s *AggregateSuite) TestFollowsSymlinks() {
	require := require.New(s.T())
	store := filepath.Join(filepath.Dir(s.inputsRoot), "store")
	s.write(filepath.Join(store, "greedy", "g.txt"), "01/01/2020 00:00:00.000\n2 2\n01/01/2020 00:00:01.000\n")
	s.write(filepath.Join(store, "g.txt"), "3 2\n1 2\n2 3\n")
	require.NoError(os.Symlink(filepath.Join(store, "greedy"), filepath.Join(s.resultsRoot, "greedy")))
	require.NoError(os.Symlink(filepath.Join(store, "g.txt"), filepath.Join(s.inputsRoot, "g.txt")))
	// dangling links are neither algorithms nor graphs
	require.NoError(os.Symlink(filepath.Join(store, "gone"), filepath.Join(s.resultsRoot, "gone")))
	require.NoError(os.Symlink(filepath.Join(store, "gone.txt"), filepath.Join(s.inputsRoot, "gone.txt")))
	// a link to a directory is not an input graph
	require.NoError(os.Symlink(store, filepath.Join(s.inputsRoot, "store")))

	tbl, err := results.Aggregate(s.opts())
	require.NoError(err)
	require.Equal([]string{"greedy"}, tbl.Algorithms)
	require.Len(tbl.Rows, 1)
	require.Equal("g", tbl.Rows[0].Name)
	require.Equal(results.Cell{Result: "2", Secondary: "2", Time: "1"}, tbl.Rows[0].Cells[0])
	require.Equal(results.Stats{N: "3", M: "2", MaxDegree: "2"}, tbl.Rows[0].Stats)
}

func (s *AggregateSuite) TestRoots() {
	require := require.New(s.T())
	_, err := results.Aggregate(results.Options{InputsRoot: s.inputsRoot})
	require.ErrorIs(err, results.ErrNoRoot)

	bad := s.opts()
	bad.ResultsRoot = filepath.Join(s.resultsRoot, "missing")
	_, err = results.Aggregate(bad)
	require.ErrorIs(err, os.ErrNotExist)
}

func TestAggregateSuite(t *testing.T) {
	suite.Run(t, new(AggregateSuite))
}

func TestInputStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(path, []byte("4\n1 2\n1 3\n1 4\n"), 0o644))

	st, err := results.InputStats(path)
	require.NoError(t, err)
	require.Equal(t, results.Stats{N: "4", M: "3", MaxDegree: "3"}, st)
}

func TestRowName(t *testing.T) {
	require.Equal(t, "myciel5", results.RowName("myciel5.col.txt"))
	require.Equal(t, "plain", results.RowName("plain"))
	require.Equal(t, "", results.RowName(".hidden"))
}
