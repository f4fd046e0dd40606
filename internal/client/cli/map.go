package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/tfernandez-dev/menumap/internal/client/geo"
	"github.com/tfernandez-dev/menumap/internal/client/models"
)

// viewerRegion resolves the viewer's region from the locator, or nil when
// permission is denied or no sample is available.
func (a *App) viewerRegion(ctx context.Context) *models.Region {
	if err := a.locator.RequestPermission(ctx); err != nil {
		return nil
	}
	pos, err := a.locator.Current(ctx)
	if err != nil {
		return nil
	}
	return &models.Region{Position: pos}
}

// sortByDistance orders items by distance from the origin, closest first.
// Items without coordinates keep their relative order and sink to the end.
func sortByDistance(items []models.Restaurant, origin models.Position) {
	dist := func(r models.Restaurant) float64 {
		return geo.DistanceMeters(origin, models.Position{Latitude: *r.Latitude, Longitude: *r.Longitude})
	}
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.HasCoordinates() || !b.HasCoordinates() {
			return a.HasCoordinates() && !b.HasCoordinates()
		}
		return dist(a) < dist(b)
	})
}

// Map refreshes the directory and prints it as the map screen would show
// it: ordered by distance from the viewer when a position is available, in
// directory order otherwise. Restaurants without coordinates are listed
// last, marked as unmapped.
func (a *App) Map(ctx context.Context) error {
	if err := a.restaurants.FetchAll(ctx); err != nil {
		printlnFn(a.restaurants.State().Err())
	}

	items := a.restaurants.State().Items()
	if len(items) == 0 {
		printlnFn("No restaurants.")
		return nil
	}

	region := a.viewerRegion(ctx)
	if region == nil {
		printlnFn("No viewer position; showing directory order.")
		renderList(items)
		return nil
	}

	sortByDistance(items, region.Position)

	for _, r := range items {
		if !r.HasCoordinates() {
			printlnFn(" ", formatRestaurant(r), "(not on map)")
			continue
		}
		d := geo.DistanceMeters(region.Position, models.Position{Latitude: *r.Latitude, Longitude: *r.Longitude})
		printlnFn(" ", fmt.Sprintf("%.1f km", d/1000), formatRestaurant(r))
	}
	return nil
}
