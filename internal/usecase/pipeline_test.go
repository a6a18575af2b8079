package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineClassificationMiss(t *testing.T) {
	t.Parallel()

	p := NewPipeline(sampleRegistry(t), nil)
	record := p.Run(unknownDoc(t))

	assert.Empty(t, record.Publisher)
	assert.Equal(t, "http://example.org/plain", record.URL)
	assert.Empty(t, record.HeadRef)
	assert.Empty(t, record.CitedRefs)
	assert.False(t, record.Valid())
}

func TestPipelineExtractsMatchedPublisher(t *testing.T) {
	t.Parallel()

	p := NewPipeline(sampleRegistry(t), nil)
	record := p.Run(sampleDoc(t))

	require.Equal(t, "sample", record.Publisher)
	assert.Equal(t, sampleURL, record.URL)
	assert.Equal(t, []string{"A Sample Article"}, record.HeadRef["title"])
	assert.Equal(t, []string{"Doe, J."}, record.HeadRef["author"])
	require.Len(t, record.CitedRefs, 2)
	assert.Contains(t, record.CitedRefs[0], "Ref one")
	assert.True(t, record.Valid())
}
