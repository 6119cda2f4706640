package domain

import (
	"sort"
	"time"
)

// TopN is how many scorers each topper list keeps.
const TopN = 10

// Leaderboard is an immutable ranking snapshot. A new row is appended after
// every result mutation; TotalResultCount, LastCount and CreatedAt together
// say how fresh the snapshot is.
type Leaderboard struct {
	ID                 uint                 `json:"id"`
	TotalResultCount   int64                `json:"total_result_count"`
	LastCount          int64                `json:"last_count"`
	Standings          []CollegeStanding    `json:"standings"`
	CategoryTopScorers []CategoryTopScorers `json:"category_top_scorers"`
	GenderTopScorers   []GenderTopScorers   `json:"gender_top_scorers"`
	CreatedAt          time.Time            `json:"created_at"`
}

// CollegeStanding is one college's total with its contributing events.
type CollegeStanding struct {
	CollegeID  uint                `json:"college_id"`
	College    string              `json:"college"`
	TotalScore int                 `json:"total_score"`
	Events     []ContributingEvent `json:"events"`
}

type ContributingEvent struct {
	Event    string `json:"event"`
	Position string `json:"position"`
	Score    int    `json:"score"`
}

type CategoryTopScorers struct {
	Category   string      `json:"category"`
	TopScorers []TopScorer `json:"top_scorers"`
}

type GenderTopScorers struct {
	Gender     string      `json:"gender"`
	TopScorers []TopScorer `json:"top_scorers"`
}

type TopScorer struct {
	Name    string           `json:"name"`
	Score   int              `json:"score"`
	Image   string           `json:"image,omitempty"`
	College string           `json:"college"`
	Events  []EventPlacement `json:"events,omitempty"`
}

type EventPlacement struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

// CollegeScoreRow is one winning registration joined to its college, as
// fetched flat from the store. One row per winning registration.
type CollegeScoreRow struct {
	CollegeID uint
	College   string
	Event     string
	Position  string
	Score     int
}

// IndividualScoreRow is one (winning registration, participant) pairing for
// individual events, joined to the participant and their college.
type IndividualScoreRow struct {
	UserID   uint
	Name     string
	Image    string
	College  string
	Gender   string
	Category string
	Event    string
	Position string
	Score    int
}

// BuildCollegeStandings groups winning-registration rows per college, sums
// registration scores and orders colleges by total, highest first. Ties break
// on college name so reruns over the same results are stable.
func BuildCollegeStandings(rows []CollegeScoreRow) []CollegeStanding {
	byCollege := make(map[uint]*CollegeStanding)
	order := make([]uint, 0)

	for _, row := range rows {
		standing, ok := byCollege[row.CollegeID]
		if !ok {
			standing = &CollegeStanding{CollegeID: row.CollegeID, College: row.College}
			byCollege[row.CollegeID] = standing
			order = append(order, row.CollegeID)
		}

		standing.TotalScore += row.Score
		standing.Events = append(standing.Events, ContributingEvent{
			Event:    row.Event,
			Position: row.Position,
			Score:    row.Score,
		})
	}

	standings := make([]CollegeStanding, 0, len(order))
	for _, id := range order {
		standings = append(standings, *byCollege[id])
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].TotalScore != standings[j].TotalScore {
			return standings[i].TotalScore > standings[j].TotalScore
		}
		return standings[i].College < standings[j].College
	})

	return standings
}

// BuildCategoryTopScorers groups individual-event rows by (category,
// participant), sums each participant's score within the category and keeps
// the top N per category. Group events never reach this function: their
// scores belong to the registration, not to any single participant.
func BuildCategoryTopScorers(rows []IndividualScoreRow, topN int) []CategoryTopScorers {
	grouped := groupTopScorers(rows, func(r IndividualScoreRow) string { return r.Category }, topN, false)

	out := make([]CategoryTopScorers, 0, len(grouped))
	for _, g := range grouped {
		out = append(out, CategoryTopScorers{Category: g.key, TopScorers: g.scorers})
	}

	return out
}

// BuildGenderTopScorers groups on-stage individual-event rows by (gender,
// participant) and keeps the top N per gender. When withEvents is set each
// scorer also carries the events and positions that produced the total.
func BuildGenderTopScorers(rows []IndividualScoreRow, topN int, withEvents bool) []GenderTopScorers {
	grouped := groupTopScorers(rows, func(r IndividualScoreRow) string { return r.Gender }, topN, withEvents)

	out := make([]GenderTopScorers, 0, len(grouped))
	for _, g := range grouped {
		out = append(out, GenderTopScorers{Gender: g.key, TopScorers: g.scorers})
	}

	return out
}

type scorerGroup struct {
	key     string
	scorers []TopScorer
}

func groupTopScorers(rows []IndividualScoreRow, keyOf func(IndividualScoreRow) string, topN int, withEvents bool) []scorerGroup {
	type bucket struct {
		scorer TopScorer
	}

	type groupKey struct {
		key    string
		userID uint
	}

	buckets := make(map[groupKey]*bucket)
	keys := make([]string, 0)
	seenKeys := make(map[string]bool)

	for _, row := range rows {
		k := keyOf(row)
		if !seenKeys[k] {
			seenKeys[k] = true
			keys = append(keys, k)
		}

		gk := groupKey{key: k, userID: row.UserID}
		b, ok := buckets[gk]
		if !ok {
			b = &bucket{scorer: TopScorer{
				Name:    row.Name,
				Image:   row.Image,
				College: row.College,
			}}
			buckets[gk] = b
		}

		b.scorer.Score += row.Score
		if withEvents {
			b.scorer.Events = append(b.scorer.Events, EventPlacement{
				Name:     row.Event,
				Position: row.Position,
			})
		}
	}

	sort.Strings(keys)

	groups := make([]scorerGroup, 0, len(keys))
	for _, k := range keys {
		var scorers []TopScorer
		for gk, b := range buckets {
			if gk.key == k {
				scorers = append(scorers, b.scorer)
			}
		}

		sort.SliceStable(scorers, func(i, j int) bool {
			if scorers[i].Score != scorers[j].Score {
				return scorers[i].Score > scorers[j].Score
			}
			return scorers[i].Name < scorers[j].Name
		})

		if len(scorers) > topN {
			scorers = scorers[:topN]
		}

		groups = append(groups, scorerGroup{key: k, scorers: scorers})
	}

	return groups
}
