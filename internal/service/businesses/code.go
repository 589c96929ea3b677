package businesses

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
)

// RandomCodeGenerator коды из алфавита без похожих символов (0/O, 1/I)
type RandomCodeGenerator struct{}

// Generate возвращает случайный код длины length
func (RandomCodeGenerator) Generate(length int) (string, error) {
	alphabet := domain.CodeAlphabet
	size := big.NewInt(int64(len(alphabet)))

	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrCodeGeneration, err)
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf), nil
}
