package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/kurashiworks/kurashi/internal/pkg/logger"
	"github.com/kurashiworks/kurashi/internal/pkg/models"
	"github.com/kurashiworks/kurashi/internal/utils"
)

// geohashPrecision is the cell size candidates are encoded at, fine enough
// to place a professional on a street block.
const geohashPrecision = 8

// rankCandidates builds the distance-sorted, radius-filtered candidate list
// for an order. A failing geocode of the order address aborts ranking; a
// failing geocode of an individual professional only drops that professional.
func (uc *MatchingUC) rankCandidates(ctx context.Context, order *models.Order) ([]models.Candidate, error) {
	relevant := RelevantLabels(order.ServiceID, order.PlanID)

	professionals, err := uc.professionalRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active professionals: %w", err)
	}

	orderPoint, err := uc.geocoder.Geocode(ctx, order.Address.String())
	if err != nil {
		return nil, fmt.Errorf("failed to geocode order address: %w", err)
	}

	candidates := make([]models.Candidate, 0, len(professionals))
	for _, p := range professionals {
		if !isSkillEligible(relevant, p) {
			continue
		}
		// Professionals without a usable address can never be
		// distance-ranked; drop them here.
		if !p.Address.Usable() {
			continue
		}

		distance := math.Inf(1)
		geoHash := ""
		point, err := uc.geocoder.Geocode(ctx, p.Address.String())
		if err != nil {
			logger.Debug("Geocoding professional address failed, treating as unreachable",
				logger.String("professional_id", p.ID.String()),
				logger.Err(err))
		} else {
			distance = utils.CalculateDistance(orderPoint, point)
			geoHash = utils.EncodePoint(point, geohashPrecision)
		}

		if distance > uc.searchRadiusKm {
			continue
		}

		candidates = append(candidates, models.Candidate{
			Professional: *p,
			DistanceKm:   distance,
			Geohash:      geoHash,
		})
	}

	// Stable sort keeps directory iteration order for equal distances
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DistanceKm < candidates[j].DistanceKm
	})

	return candidates, nil
}
