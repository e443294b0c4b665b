package lead

import (
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/service/leakage"
)

// Lead is a calculator visitor who left their email. Inputs are stored as
// submitted (post-clamp); outputs are the server-side recomputation, never
// trusted from the client.
type Lead struct {
	ID        string
	Email     string
	Inputs    leakage.Inputs
	Outputs   leakage.Outputs
	CreatedAt time.Time
}
