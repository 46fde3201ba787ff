package service

import (
	"context"
	"fmt"
	"log/slog"

	"media_syncer/internal/domain"
)

// crewRolePriority fixes the order in which single-holder crew roles
// are resolved against the fetched crew list.
var crewRolePriority = []domain.CreditRole{
	domain.RoleDirector,
	domain.RoleProducer,
	domain.RoleExecProducer,
	domain.RoleWriter,
}

// crewRoleJobs maps each single-holder role to the upstream job titles
// that qualify for it. The writer role unifies two upstream jobs.
var crewRoleJobs = map[domain.CreditRole][]string{
	domain.RoleDirector:     {"Director"},
	domain.RoleProducer:     {"Producer"},
	domain.RoleExecProducer: {"Executive Producer"},
	domain.RoleWriter:       {"Writer", "Screenplay"},
}

// CreditSynchronizer converges an entry's bridges to the latest credits:
// stale bridges are removed, cast bridges are inserted or re-ordered,
// and each crew role keeps at most one holder, the first qualifying
// person in upstream crew order.
type CreditSynchronizer struct {
	bridges BridgeStore
	logger  *slog.Logger
}

func NewCreditSynchronizer(bridges BridgeStore, logger *slog.Logger) *CreditSynchronizer {
	return &CreditSynchronizer{
		bridges: bridges,
		logger:  logger,
	}
}

func (s *CreditSynchronizer) Sync(ctx context.Context, entryID int64, payload *domain.TitlePayload) error {
	existing, err := s.bridges.ListByEntry(ctx, entryID)
	if err != nil {
		return fmt.Errorf("list bridges: %w", err)
	}

	castOrder := desiredCast(payload.Cast)
	crewHolders := desiredCrew(payload.Crew)

	type bridgeKey struct {
		personID int64
		role     domain.CreditRole
	}
	current := make(map[bridgeKey]domain.EntryPersonBridge, len(existing))
	for _, b := range existing {
		current[bridgeKey{b.PersonID, b.Role}] = b
	}

	// Removal pass: drop bridges whose credit disappeared from the
	// latest fetch, or whose crew role moved to another person.
	for _, b := range existing {
		keep := false
		if b.Role == domain.RoleCast {
			_, keep = castOrder[b.PersonID]
		} else if holder, ok := crewHolders[b.Role]; ok {
			keep = holder == b.PersonID
		}
		if keep {
			continue
		}
		if err := s.bridges.Delete(ctx, entryID, b.PersonID, b.Role); err != nil {
			return fmt.Errorf("delete bridge: %w", err)
		}
		s.logger.Debug("credit removed",
			"entry_id", entryID,
			"person_id", b.PersonID,
			"role", b.Role,
		)
	}

	// Cast pass: insert missing bridges, refresh changed sort orders.
	for personID, order := range castOrder {
		if b, ok := current[bridgeKey{personID, domain.RoleCast}]; ok && b.SortOrder == order {
			continue
		}
		err := s.bridges.Upsert(ctx, domain.EntryPersonBridge{
			EntryID:   entryID,
			PersonID:  personID,
			Role:      domain.RoleCast,
			SortOrder: order,
		})
		if err != nil {
			return fmt.Errorf("upsert cast bridge: %w", err)
		}
	}

	// Crew pass: one bridge per occupied single-holder role.
	for _, role := range crewRolePriority {
		holder, ok := crewHolders[role]
		if !ok {
			continue
		}
		if _, exists := current[bridgeKey{holder, role}]; exists {
			continue
		}
		err := s.bridges.Upsert(ctx, domain.EntryPersonBridge{
			EntryID:  entryID,
			PersonID: holder,
			Role:     role,
		})
		if err != nil {
			return fmt.Errorf("upsert crew bridge: %w", err)
		}
	}

	return nil
}

// desiredCast maps each cast member to their billing order, first
// occurrence winning on duplicates.
func desiredCast(cast []domain.Credit) map[int64]int {
	result := make(map[int64]int, len(cast))
	for _, c := range cast {
		if _, ok := result[c.PersonID]; !ok {
			result[c.PersonID] = c.Order
		}
	}
	return result
}

// desiredCrew picks the single holder of each crew role: the first
// person in upstream crew order whose job qualifies. The upstream
// ordering is stable, which makes the tie-break deterministic.
func desiredCrew(crew []domain.Credit) map[domain.CreditRole]int64 {
	result := make(map[domain.CreditRole]int64, len(crewRolePriority))
	for _, role := range crewRolePriority {
	scan:
		for _, member := range crew {
			for _, job := range crewRoleJobs[role] {
				if member.Job == job {
					result[role] = member.PersonID
					break scan
				}
			}
		}
	}
	return result
}
