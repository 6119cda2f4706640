package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCollegeStandings(t *testing.T) {
	rows := []CollegeScoreRow{
		{CollegeID: 1, College: "St. Berchmans", Event: "Group Song", Position: "first", Score: 10},
		{CollegeID: 2, College: "Maharajas", Event: "Group Song", Position: "second", Score: 8},
		{CollegeID: 1, College: "St. Berchmans", Event: "Mime", Position: "third", Score: 5},
		{CollegeID: 3, College: "Assumption", Event: "Mime", Position: "first", Score: 10},
		{CollegeID: 2, College: "Maharajas", Event: "Quiz", Position: "first", Score: 7},
	}

	standings := BuildCollegeStandings(rows)

	assert.Len(t, standings, 3)
	assert.Equal(t, uint(1), standings[0].CollegeID)
	assert.Equal(t, 15, standings[0].TotalScore)
	assert.Equal(t, uint(2), standings[1].CollegeID)
	assert.Equal(t, 15, standings[1].TotalScore)
	assert.Equal(t, uint(3), standings[2].CollegeID)
	assert.Equal(t, 10, standings[2].TotalScore)

	// Maharajas and St. Berchmans tie on 15; name order decides.
	assert.Equal(t, "Maharajas", standings[0].College)

	assert.Equal(t, []ContributingEvent{
		{Event: "Group Song", Position: "first", Score: 10},
		{Event: "Mime", Position: "third", Score: 5},
	}, standings[0].Events)
}

func TestBuildCollegeStandings_Empty(t *testing.T) {
	standings := BuildCollegeStandings(nil)

	assert.Empty(t, standings)
}

func TestBuildCategoryTopScorers(t *testing.T) {
	rows := []IndividualScoreRow{
		{UserID: 1, Name: "Anu", College: "Maharajas", Category: "chithrolsavam", Event: "Pencil Drawing", Position: "first", Score: 10},
		{UserID: 1, Name: "Anu", College: "Maharajas", Category: "chithrolsavam", Event: "Cartoon", Position: "second", Score: 8},
		{UserID: 2, Name: "Binu", College: "Assumption", Category: "chithrolsavam", Event: "Pencil Drawing", Position: "second", Score: 8},
		{UserID: 3, Name: "Chitra", College: "Maharajas", Category: "saahithyolsavam", Event: "Essay", Position: "first", Score: 10},
	}

	boards := BuildCategoryTopScorers(rows, TopN)

	assert.Len(t, boards, 2)

	// Categories come back in sorted order.
	assert.Equal(t, "chithrolsavam", boards[0].Category)
	assert.Equal(t, "saahithyolsavam", boards[1].Category)

	assert.Len(t, boards[0].TopScorers, 2)
	assert.Equal(t, "Anu", boards[0].TopScorers[0].Name)
	assert.Equal(t, 18, boards[0].TopScorers[0].Score)
	assert.Equal(t, "Binu", boards[0].TopScorers[1].Name)
	assert.Equal(t, 8, boards[0].TopScorers[1].Score)

	// The category pass never carries per-event placements.
	assert.Empty(t, boards[0].TopScorers[0].Events)
}

func TestBuildCategoryTopScorers_TopNCutoff(t *testing.T) {
	rows := make([]IndividualScoreRow, 0, 5)
	names := []string{"A", "B", "C", "D", "E"}
	for i, name := range names {
		rows = append(rows, IndividualScoreRow{
			UserID:   uint(i + 1),
			Name:     name,
			Category: "saahithyolsavam",
			Event:    "Essay",
			Position: "first",
			Score:    10 - i,
		})
	}

	boards := BuildCategoryTopScorers(rows, 3)

	assert.Len(t, boards, 1)
	assert.Len(t, boards[0].TopScorers, 3)
	assert.Equal(t, "A", boards[0].TopScorers[0].Name)
	assert.Equal(t, "C", boards[0].TopScorers[2].Name)
}

func TestBuildGenderTopScorers(t *testing.T) {
	rows := []IndividualScoreRow{
		{UserID: 1, Name: "Anu", College: "Maharajas", Gender: "female", Event: "Light Music", Position: "first", Score: 10},
		{UserID: 1, Name: "Anu", College: "Maharajas", Gender: "female", Event: "Mono Act", Position: "second", Score: 8},
		{UserID: 2, Name: "Binu", College: "Assumption", Gender: "male", Event: "Light Music", Position: "first", Score: 10},
		{UserID: 3, Name: "Devi", College: "Assumption", Gender: "female", Event: "Mono Act", Position: "first", Score: 10},
	}

	boards := BuildGenderTopScorers(rows, TopN, true)

	assert.Len(t, boards, 2)
	assert.Equal(t, "female", boards[0].Gender)
	assert.Equal(t, "male", boards[1].Gender)

	assert.Equal(t, "Anu", boards[0].TopScorers[0].Name)
	assert.Equal(t, 18, boards[0].TopScorers[0].Score)
	assert.Equal(t, []EventPlacement{
		{Name: "Light Music", Position: "first"},
		{Name: "Mono Act", Position: "second"},
	}, boards[0].TopScorers[0].Events)

	assert.Equal(t, "Devi", boards[0].TopScorers[1].Name)
}

func TestBuildGenderTopScorers_WithoutEvents(t *testing.T) {
	rows := []IndividualScoreRow{
		{UserID: 1, Name: "Anu", Gender: "female", Event: "Light Music", Position: "first", Score: 10},
	}

	boards := BuildGenderTopScorers(rows, TopN, false)

	assert.Len(t, boards, 1)
	assert.Empty(t, boards[0].TopScorers[0].Events)
}

func TestGroupTopScorers_SameNameDifferentUsers(t *testing.T) {
	// Two distinct participants sharing a name must not be merged.
	rows := []IndividualScoreRow{
		{UserID: 1, Name: "Anu", College: "Maharajas", Gender: "female", Event: "Essay", Position: "first", Score: 10},
		{UserID: 2, Name: "Anu", College: "Assumption", Gender: "female", Event: "Quiz", Position: "first", Score: 7},
	}

	boards := BuildGenderTopScorers(rows, TopN, false)

	assert.Len(t, boards, 1)
	assert.Len(t, boards[0].TopScorers, 2)
}
