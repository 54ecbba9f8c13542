package roster

// Display data for the roster pages. Served read-only; there are no
// mutation routes.

type Employee struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Salary float64 `json:"salary"`
}

type Achievement struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Img         string `json:"img"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

const (
	RoleEntryLevel = "Entry Level"
	RoleSenior     = "Senior"
)

func Employees() []Employee {
	return []Employee{
		{ID: 1, Name: "Juan", Role: RoleEntryLevel, Salary: 25000},
		{ID: 2, Name: "Cruz", Role: RoleEntryLevel, Salary: 25000},
		{ID: 5, Name: "Janet", Role: RoleSenior, Salary: 50000},
		{ID: 6, Name: "Mark", Role: RoleSenior, Salary: 50000},
		{ID: 7, Name: "Bossing", Role: RoleSenior, Salary: 250000},
	}
}

func Achievements() []Achievement {
	return []Achievement{
		{
			ID:          1,
			Title:       "From Highschool",
			Img:         "/static/img/achievement1.jpg",
			Description: "A top notcher since high school.",
			Category:    "Bracelet",
		},
		{
			ID:          2,
			Title:       "Polytechnic",
			Img:         "/static/img/achievement2.jpg",
			Description: "Awarded for speaking at this school.",
			Category:    "Brass Bracelet",
		},
		{
			ID:          3,
			Title:       "Journalism",
			Img:         "/static/img/achievement4.jpg",
			Description: "First place in English sports writing.",
			Category:    "Necklace",
		},
		{
			ID:          4,
			Title:       "College",
			Img:         "/static/img/achievement1.jpg",
			Description: "Top notcher with several awards while serving as a BM.",
			Category:    "Bracelet",
		},
	}
}
