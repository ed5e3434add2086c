package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Freeeeeet/study_system/internal/formatting"
	"github.com/Freeeeeet/study_system/internal/model"
)

func main() {
	all := flag.Bool("all", false, "check every weekly time slot for fingerprint collisions")
	locale := flag.String("locale", "hu", "day name locale (hu, en)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: slot_fingerprint [-locale hu|en] <day> <hour> [minute]\n")
		fmt.Fprintf(os.Stderr, "       slot_fingerprint -all\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	loc, err := formatting.ParseLocale(*locale)
	if err != nil {
		fail(err)
	}

	if *all {
		n, err := checkWeek()
		if err != nil {
			fail(err)
		}
		fmt.Printf("✅ %d time slots, all fingerprints distinct\n", n)
		return
	}

	ts, err := parseArgs(flag.Args())
	if err != nil {
		flag.Usage()
		fail(err)
	}

	fmt.Printf("%s\t%d\n", formatting.FormatTimeSlot(loc, ts), ts.Fingerprint())
}

func parseArgs(args []string) (model.TimeSlot, error) {
	if len(args) < 2 || len(args) > 3 {
		return model.TimeSlot{}, fmt.Errorf("expected 2 or 3 arguments, got %d", len(args))
	}

	day, err := formatting.ParseDay(args[0])
	if err != nil {
		return model.TimeSlot{}, err
	}

	hour, err := strconv.Atoi(args[1])
	if err != nil {
		return model.TimeSlot{}, fmt.Errorf("parse hour: %w", err)
	}

	if len(args) == 2 {
		return model.NewTimeSlotAtHour(day, hour)
	}

	minute, err := strconv.Atoi(args[2])
	if err != nil {
		return model.TimeSlot{}, fmt.Errorf("parse minute: %w", err)
	}
	return model.NewTimeSlot(day, hour, minute)
}

// checkWeek перебирает все 7*24*60 точек недели и ищет совпадения отпечатков
func checkWeek() (int, error) {
	seen := make(map[int]model.TimeSlot)
	for _, day := range model.Days() {
		for hour := 0; hour < 24; hour++ {
			for minute := 0; minute < 60; minute++ {
				ts, err := model.NewTimeSlot(day, hour, minute)
				if err != nil {
					return 0, err
				}
				if prev, ok := seen[ts.Fingerprint()]; ok {
					return 0, fmt.Errorf("fingerprint %d shared by %s and %s", ts.Fingerprint(), prev, ts)
				}
				seen[ts.Fingerprint()] = ts
			}
		}
	}
	return len(seen), nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "❌ %v\n", err)
	os.Exit(1)
}
