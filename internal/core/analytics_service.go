package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"petcare-backend-go/internal/db"
	"petcare-backend-go/internal/models"
	"petcare-backend-go/pkg/cache"
)

// snapshotTTL bounds how stale a cached dashboard snapshot can be.
const snapshotTTL = 60 * time.Second

// analyticsService implements the AnalyticsService interface. The viewer's
// appointment set is fetched in full and aggregated in memory; the result is
// cached per scope for a short TTL. Data volumes here are small, so the
// full fetch stays within memory comfortably.
type analyticsService struct {
	apptRepo db.AppointmentRepository
	cache    cache.Cache // nil disables caching
}

// NewAnalyticsService creates a new AnalyticsService instance. c may be nil,
// in which case every call aggregates from the store.
func NewAnalyticsService(ar db.AppointmentRepository, c cache.Cache) AnalyticsService {
	return &analyticsService{
		apptRepo: ar,
		cache:    c,
	}
}

// Snapshot returns the aggregated dashboard numbers for the viewer's scope.
func (s *analyticsService) Snapshot(ctx context.Context, viewer Viewer) (*Snapshot, error) {
	key := s.cacheKey(viewer)

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key); err == nil && raw != "" {
			var snap Snapshot
			if err := json.Unmarshal([]byte(raw), &snap); err == nil {
				return &snap, nil
			}
			// A corrupt cache entry is recomputed below.
		}
	}

	appts, err := s.apptRepo.ListByFilter(ctx, filterFor(viewer))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments for analytics: %w", err)
	}

	snap := Aggregate(appts)

	if s.cache != nil {
		if raw, err := json.Marshal(snap); err == nil {
			if err := s.cache.Set(ctx, key, string(raw), snapshotTTL); err != nil {
				log.Printf("Analytics: failed to cache snapshot for key '%s': %v", key, err)
			}
		}
	}
	return snap, nil
}

func (s *analyticsService) cacheKey(viewer Viewer) string {
	key := "analytics:" + string(viewer.Role)
	if viewer.Role == models.RoleOwner {
		key += ":" + viewer.UserID
	}
	if clinic := viewer.Role.Clinic(); clinic != 0 {
		key += ":clinic" + strconv.Itoa(clinic)
	}
	return key
}

// Aggregate computes the snapshot over an appointment set: totals, unique
// pets by name, unique owners by id, revenue summed from the stored payment,
// month buckets keyed by the scheduled date's month name, species and room
// distributions, and a status breakdown.
func Aggregate(appts []*models.Appointment) *Snapshot {
	snap := &Snapshot{
		SpeciesDistribution: map[string]int{},
		RoomOccupancy:       map[string]int{},
		StatusCounts:        map[models.Status]int{},
	}

	pets := map[string]struct{}{}
	owners := map[string]struct{}{}
	monthly := make([]MonthStat, 12)
	for i := range monthly {
		monthly[i].Month = time.Month(i + 1).String()
	}

	for _, appt := range appts {
		snap.TotalAppointments++
		snap.TotalRevenue += appt.Payment

		if appt.PetName != "" {
			pets[appt.PetName] = struct{}{}
		}
		if appt.OwnerID != "" {
			owners[appt.OwnerID] = struct{}{}
		}
		if appt.PetType != "" {
			snap.SpeciesDistribution[appt.PetType]++
		}
		if appt.Room != "" {
			snap.RoomOccupancy[appt.Room]++
		}
		snap.StatusCounts[appt.Status]++

		if !appt.ScheduledAt.IsZero() {
			m := int(appt.ScheduledAt.Month()) - 1
			monthly[m].Appointments++
			monthly[m].Revenue += appt.Payment
		}
	}

	snap.UniquePets = len(pets)
	snap.UniqueOwners = len(owners)
	snap.Monthly = monthly
	return snap
}
