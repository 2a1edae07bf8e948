package registration

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"accreditation-backend/internal/logger"
	"accreditation-backend/internal/repository"
)

// maxCodeAttempts bounds retry-on-collision; exhaustion is fatal and
// surfaced to the caller as a server error.
const maxCodeAttempts = 5

// ErrCodeExhausted is returned after maxCodeAttempts colliding codes.
var ErrCodeExhausted = errors.New("registration code generation exhausted")

// CodeGenerator produces registration codes of the form
// {EVENTPREFIX}-{TYPEPREFIX}-{YY}-{6 random digits}. The generator itself
// makes no uniqueness promise; the issuer enforces it by retrying.
type CodeGenerator interface {
	Generate(eventPrefix, typePrefix string) string
}

type randomCodeGenerator struct {
	now func() time.Time
}

func NewCodeGenerator() CodeGenerator {
	return &randomCodeGenerator{now: time.Now}
}

func (g *randomCodeGenerator) Generate(eventPrefix, typePrefix string) string {
	return fmt.Sprintf("%s-%s-%s-%06d",
		strings.ToUpper(eventPrefix),
		strings.ToUpper(typePrefix),
		g.now().Format("06"),
		rand.IntN(1000000))
}

// CodeIssuer draws codes from a generator until one is unused.
type CodeIssuer struct {
	gen          CodeGenerator
	participants repository.ParticipantRepository
}

func NewCodeIssuer(gen CodeGenerator, participants repository.ParticipantRepository) *CodeIssuer {
	return &CodeIssuer{gen: gen, participants: participants}
}

// Issue returns a registration code not yet held by any participant, or
// ErrCodeExhausted after maxCodeAttempts collisions. Repository errors
// propagate immediately.
func (i *CodeIssuer) Issue(ctx context.Context, eventPrefix, typePrefix string) (string, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code := i.gen.Generate(eventPrefix, typePrefix)
		exists, err := i.participants.ExistsByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
		logger.Warn("Registration code collision", "code", code, "attempt", attempt)
	}
	return "", ErrCodeExhausted
}
