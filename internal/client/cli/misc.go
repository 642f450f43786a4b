package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/menta/internal/client/models"
	"github.com/dmitrijs2005/menta/internal/client/views"
)

// Home prints the landing screen with navigation and footer.
func (a *App) Home(ctx context.Context, _ []string) error {
	_, _ = a.router.Go(views.RouteHome)
	h := views.NewHomeView(a.session)

	renderChrome(a.out, a.chrome)
	a.println(h.Title())
	a.println(a.chrome.Greeting())
	for _, r := range h.Next() {
		a.printf("  -> %s (%s)\n", r, r.Path())
	}
	renderFooter(a.out, a.chrome)
	return nil
}

// Spots lists study spots. Arguments are "lat lon [radius]" or
// "box south west north east"; none means the default center.
func (a *App) Spots(ctx context.Context, args []string) error {
	if err := a.enter(ctx, views.RouteMap); err != nil {
		return err
	}
	v := views.NewMapView(a.session, a.spots)
	defer v.Close()

	var err error
	switch {
	case len(args) == 5 && args[0] == "box":
		var nums []float64
		if nums, err = parseFloats(args[1:]); err == nil {
			err = v.SearchBox(ctx, models.BoundingBox{South: nums[0], West: nums[1], North: nums[2], East: nums[3]})
		}
	case len(args) == 2 || len(args) == 3:
		var nums []float64
		if nums, err = parseFloats(args); err == nil {
			v.Lat, v.Lon = nums[0], nums[1]
			if len(nums) == 3 {
				v.Radius = nums[2]
			}
			err = v.Search(ctx)
		}
	case len(args) == 0:
		err = v.Mount(ctx)
	default:
		a.println("Usage: spots [lat lon [radius]] | spots box <south> <west> <north> <east>")
		return nil
	}
	if err != nil {
		return a.fail(ctx, "spots", err)
	}

	renderSpots(a.out, v.Spots.Value())
	return nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// Clubs shows the club form and records a proposal.
func (a *App) Clubs(ctx context.Context, _ []string) error {
	if err := a.enter(ctx, views.RouteClubs); err != nil {
		return err
	}
	v := a.clubs
	if err := v.Mount(ctx); err != nil {
		return a.fail(ctx, "clubs", err)
	}

	for _, c := range v.Submitted {
		a.printf("  %s: %s, %s\n", c.Club, c.Name, c.Location)
	}

	var err error
	if v.Form.Name, err = a.ask("Club name"); err != nil {
		return err
	}
	if v.Form.Location, err = a.ask("Location"); err != nil {
		return err
	}
	names := make([]string, len(models.Clubs))
	for i, c := range models.Clubs {
		names[i] = string(c)
	}
	if err := a.askUntil("Club type ("+joinComma(names)+")", v.SelectClub); err != nil {
		return err
	}

	msg, err := v.Submit()
	if err != nil {
		return a.fail(ctx, "clubs", err)
	}
	a.println(msg)
	return nil
}
