package profile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/fsloadgo/internal/arena"
	"github.com/vk/fsloadgo/internal/randdist"
	"github.com/vk/fsloadgo/internal/vars"
)

func newTestRegistry() *vars.Registry {
	return vars.New(vars.Config{
		Arena:        arena.New(0),
		NewGenerator: func() vars.Generator { return randdist.New() },
		Shutdown:     func(int) {},
	})
}

// writeProfile drops an .hcl file into a fresh temp dir and returns the dir.
func writeProfile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir
}

func TestLoadAppliesSets(t *testing.T) {
	reg := newTestRegistry()
	dir := writeProfile(t, `
set {
  nfiles   = 10000
  meansize = 16.5
  dir      = "/tmp/bench"
  cached   = true
}
`)

	_, err := NewLoader(reg).Load(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, uint64(10000), reg.Find("nfiles").Int())
	assert.Equal(t, 16.5, reg.Find("meansize").Double())
	assert.Equal(t, "/tmp/bench", reg.Find("dir").Str())
	assert.True(t, reg.Find("cached").Bool())
}

func TestLoadDefinesRandom(t *testing.T) {
	reg := newTestRegistry()
	dir := writeProfile(t, `
random "iosize" {
  type   = "uniform"
  source = "rand48"
  seed   = 42
  min    = 1024
  mean   = 8192
  round  = 512
}
`)

	_, err := NewLoader(reg).Load(context.Background(), dir)
	require.NoError(t, err)

	v := reg.FindRandVar("$iosize")
	require.NotNil(t, v)

	gen := v.Gen().(*randdist.Generator)
	assert.Equal(t, randdist.DistUniform, gen.Dist())
	assert.Equal(t, "rand48", gen.SourceName())

	for i := 0; i < 100; i++ {
		s := gen.Sample()
		assert.GreaterOrEqual(t, s, 1024.0)
		assert.Zero(t, int64(s)%512)
	}
}

func TestLoadTabularRandom(t *testing.T) {
	reg := newTestRegistry()
	dir := writeProfile(t, `
random "filesize" {
  type = "tabular"
  table = [
    { min = 0, max = 1024, weight = 10 },
    { min = 1024, max = 8192, weight = 90 },
  ]
}
`)

	_, err := NewLoader(reg).Load(context.Background(), dir)
	require.NoError(t, err)

	v := reg.FindRandVar("$filesize")
	require.NotNil(t, v)
	gen := v.Gen().(*randdist.Generator)
	assert.Equal(t, randdist.DistTabular, gen.Dist())

	s := gen.Sample()
	assert.GreaterOrEqual(t, s, 0.0)
	assert.LessOrEqual(t, s, 8192.0)
}

func TestLoadBindsWorkload(t *testing.T) {
	reg := newTestRegistry()
	dir := writeProfile(t, `
set {
  nfiles = 100
}

workload "fileserver" {
  nthreads = 8
  path     = "/mnt/data"
  files    = "$nfiles"
}
`)

	model, err := NewLoader(reg).Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, model.Workloads, 1)

	wl := model.Workloads[0]
	assert.Equal(t, "fileserver", wl.Name)
	assert.Equal(t, uint64(8), wl.Attrs["nthreads"].GetInt())
	assert.Equal(t, "/mnt/data", wl.Attrs["path"].GetString())
	assert.Equal(t, uint64(100), wl.Attrs["files"].GetInt())

	// The $nfiles attribute is bound, not copied: later sets show through.
	require.NoError(t, reg.AssignInt("$nfiles", 5000))
	assert.Equal(t, uint64(5000), wl.Attrs["files"].GetInt())
	assert.Equal(t, uint64(8), wl.Attrs["nthreads"].GetInt(), "literals stay constant")
}

func TestLoadBindsBareTraversal(t *testing.T) {
	reg := newTestRegistry()
	dir := writeProfile(t, `
set {
  blocksize = 4096
}

workload "reader" {
  iosize = blocksize
}
`)

	model, err := NewLoader(reg).Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, model.Workloads, 1)

	assert.Equal(t, uint64(4096), model.Workloads[0].Attrs["iosize"].GetInt())

	require.NoError(t, reg.AssignInt("$blocksize", 8192))
	assert.Equal(t, uint64(8192), model.Workloads[0].Attrs["iosize"].GetInt())
}

func TestLoadRejectsReferenceToUnsetVariable(t *testing.T) {
	reg := newTestRegistry()
	dir := writeProfile(t, `
workload "reader" {
  iosize = blocksize
}
`)

	_, err := NewLoader(reg).Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot bind reference")

	// The referenced name was still allocated for a later set.
	assert.NotNil(t, reg.Find("blocksize"))
}

func TestLoadOrdering(t *testing.T) {
	// Sets apply before random definitions within a file, so a random
	// parameter can reference a variable set in the same file.
	reg := newTestRegistry()
	dir := writeProfile(t, `
random "iosize" {
  type = "uniform"
  min  = 0
  mean = "$meaniosize"
}

set {
  meaniosize = 4096
}
`)

	_, err := NewLoader(reg).Load(context.Background(), dir)
	require.NoError(t, err)

	gen := reg.FindRandVar("$iosize").Gen().(*randdist.Generator)
	assert.Equal(t, uint64(4096), gen.Param(vars.ParamMean).GetInt())
}

func TestLoadRejectsLabeledSet(t *testing.T) {
	reg := newTestRegistry()
	dir := writeProfile(t, `
set "defaults" {
  nfiles = 10
}
`)

	_, err := NewLoader(reg).Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Extraneous label")
}

func TestLoadRejectsMalformedTableRow(t *testing.T) {
	reg := newTestRegistry()
	dir := writeProfile(t, `
random "filesize" {
  type = "tabular"
  table = [
    { min = 0, max = 1024 },
  ]
}
`)

	_, err := NewLoader(reg).Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "probability table row")
}

func TestLoadRejectsDuplicateRandom(t *testing.T) {
	reg := newTestRegistry()
	dir := writeProfile(t, `
random "x" {
  type = "uniform"
}

random "x" {
  type = "gamma"
}
`)

	_, err := NewLoader(reg).Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "definition rejected")
}

func TestLoadRejectsUnknownRandomParameter(t *testing.T) {
	reg := newTestRegistry()
	dir := writeProfile(t, `
random "x" {
  type  = "uniform"
  sigma = 3
}
`)

	_, err := NewLoader(reg).Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown parameter")
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	reg := newTestRegistry()
	dir := writeProfile(t, `set {`)

	_, err := NewLoader(reg).Load(context.Background(), dir)
	require.Error(t, err)
}

func TestLoadEmptyDir(t *testing.T) {
	reg := newTestRegistry()

	model, err := NewLoader(reg).Load(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, model.Workloads)
}
