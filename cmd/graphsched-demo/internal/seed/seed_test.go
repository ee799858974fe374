package seed_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsched/cmd/graphsched-demo/internal/seed"
)

func TestParseAndRun(t *testing.T) {
	input := `from,to,weight,cutable
a,b,2,true
b,c,2,true
c,a,2,true
`
	doc, err := seed.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, doc.Order)

	result, err := seed.Run(doc)
	require.NoError(t, err)
	assert.Equal(t, 1, result.CutEdges)

	var buf bytes.Buffer
	seed.Report(&buf, doc, result)
	assert.Contains(t, buf.String(), "cut edges: 1")
}

func TestParse_DefaultsWeightAndCutable(t *testing.T) {
	doc, err := seed.Parse(strings.NewReader("a,b\n"))
	require.NoError(t, err)
	require.Len(t, doc.Order, 2)

	a := doc.Graph.Vertices()[0]
	require.Len(t, a.Out(), 1)
	assert.Equal(t, int64(1), a.Out()[0].Weight)
	assert.True(t, doc.Graph.Cutable(a.Out()[0]))
}

func TestParse_MalformedLine(t *testing.T) {
	_, err := seed.Parse(strings.NewReader("justonefield\n"))
	assert.Error(t, err)
}
