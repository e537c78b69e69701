package semantic

import (
	"context"
	"hash/fnv"
	"math"
	"strings"

	chromem "github.com/philippgille/chromem-go"
)

// localEmbeddingDim is the dimensionality of the deterministic local
// embedder.
const localEmbeddingDim = 128

// LocalEmbedding returns a deterministic, dependency-free embedding
// function: token hashing into a fixed-size normalized bag-of-words vector.
// It gives stable nearest-neighbor behavior for overlapping vocabulary,
// which is sufficient for local deployments and tests. Production
// deployments configure an OpenAI-compatible embedder instead
// (chromem.NewEmbeddingFuncOpenAI).
func LocalEmbedding() chromem.EmbeddingFunc {
	return func(_ context.Context, text string) ([]float32, error) {
		vec := make([]float32, localEmbeddingDim)
		for _, token := range strings.Fields(strings.ToLower(text)) {
			h := fnv.New32a()
			_, _ = h.Write([]byte(token))
			vec[h.Sum32()%localEmbeddingDim]++
		}

		var norm float64
		for _, v := range vec {
			norm += float64(v) * float64(v)
		}
		if norm == 0 {
			vec[0] = 1
			return vec, nil
		}
		scale := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
		return vec, nil
	}
}
