package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cheonTH/singlelife/internal/models"
	"github.com/cheonTH/singlelife/internal/places"
)

func (a *App) placesScreen(ctx context.Context) {
	result := places.Result{State: places.StateIdle}

	for {
		_, label := a.places.Origin(ctx)
		fmt.Printf("\n== places (📍 %s) ==\n", label)

		switch result.State {
		case places.StateIdle:
			fmt.Println("Search for something nearby.")
		case places.StateEmpty:
			fmt.Println("No places found around here.")
		case places.StateFailed:
			a.notice(result.Err)
		case places.StateResults:
			for i, p := range result.Places {
				fmt.Printf("  %d) %s — %s (%.0f m)\n", i+1, p.Name, p.Address, p.DistanceM)
			}
		}

		fmt.Println("g <keyword>  k <keyword> (category)  a <address> set origin  o) reset origin  v <n> reviews  b) back")
		input := a.prompt("places> ")
		cmd, arg := splitCmd(input)
		switch cmd {
		case "g":
			if arg == "" {
				fmt.Println("Usage: g <keyword>")
				continue
			}
			result = a.places.BroadSearch(ctx, arg)
		case "k":
			if arg == "" {
				fmt.Println("Usage: k <keyword>")
				continue
			}
			result = a.places.CategorySearch(ctx, arg)
		case "a":
			if arg == "" {
				fmt.Println("Usage: a <address>")
				continue
			}
			label, err := a.places.UseAddress(ctx, arg)
			if err != nil {
				a.notice(err)
				continue
			}
			fmt.Printf("Origin set to %s.\n", label)
		case "o":
			a.places.ClearPinnedOrigin()
		case "v":
			n, err := strconv.Atoi(arg)
			if err != nil || n < 1 || n > len(result.Places) {
				fmt.Println("Usage: v <result number>")
				continue
			}
			a.reviewScreen(ctx, result.Places[n-1])
		case "b", "q":
			return
		default:
			fmt.Println("Unknown command.")
		}
	}
}

func (a *App) reviewScreen(ctx context.Context, place models.Place) {
	if err := a.reviews.Load(ctx, place); err != nil {
		a.notice(err)
		return
	}

	for {
		fmt.Printf("\n== %s — %s ==\n", place.Name, place.Address)
		if my, ok := a.reviews.MyReview(); ok {
			fmt.Printf("  my review: 📝 %s\n", my.Review)
		}
		page, total := a.reviews.Page()
		for _, r := range a.reviews.PageReviews() {
			fmt.Printf("  [%d] %s: 📝 %s\n", r.ID, r.NickName, r.Review)
		}
		fmt.Printf("  page %d/%d\n", page, total)

		fmt.Println("n) next  p) prev  w) write  d <id>) delete  b) back")
		input := a.prompt("reviews> ")
		cmd, arg := splitCmd(input)
		switch cmd {
		case "n":
			a.reviews.Next()
		case "p":
			a.reviews.Prev()
		case "w":
			text := a.prompt("review> ")
			if err := a.reviews.Submit(ctx, text); err != nil {
				a.notice(err)
			}
		case "d":
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				fmt.Println("Usage: d <review id>")
				continue
			}
			if err := a.reviews.Delete(ctx, id); err != nil {
				a.notice(err)
			}
		case "b", "q":
			return
		default:
			fmt.Println("Unknown command.")
		}
	}
}
