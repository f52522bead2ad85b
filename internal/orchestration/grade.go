package orchestration

// gradeBands lists the lower bound of each letter, best first.
var gradeBands = []struct {
	min   int
	grade Grade
}{
	{90, Grade{Letter: "A", Description: "Excellent orchestration - Following all guidelines"}},
	{75, Grade{Letter: "B", Description: "Good orchestration - Minor improvements needed"}},
	{60, Grade{Letter: "C", Description: "Fair orchestration - Several improvements needed"}},
	{40, Grade{Letter: "D", Description: "Poor orchestration - Major improvements needed"}},
}

var gradeF = Grade{Letter: "F", Description: "Orchestration ignored - Violating core principles"}

// gradeOrder ranks letters so callers can compare grades.
var gradeOrder = map[string]int{"A": 5, "B": 4, "C": 3, "D": 2, "F": 1}

// GradeFor converts a score to its letter grade. Lower bounds are inclusive.
func GradeFor(score int) Grade {
	for _, band := range gradeBands {
		if score >= band.min {
			return band.grade
		}
	}
	return gradeF
}

// GradeAtLeast reports whether grade is at least as good as min.
// Unknown letters rank below F.
func GradeAtLeast(grade, min string) bool {
	return gradeOrder[grade] >= gradeOrder[min]
}
