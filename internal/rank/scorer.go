package rank

import "signalboost-engine/internal/domain"

type Scorer interface {
	Score(lead domain.Lead) (score int, priority string, rationale []string)
}
