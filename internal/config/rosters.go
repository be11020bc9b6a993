package config

// Default cohort names.
const (
	CohortMain       = "main"
	CohortFreeAgents = "free_agents"
)

func defaultCohorts() map[string][]string {
	return map[string][]string{
		CohortMain: {
			"Logan Webb",
			"Carlos Rodón",
			"Garrett Crochet",
			"Zac Gallen",
			"Max Fried",
			"Jake Irvin",
			"MacKenzie Gore",
			"Brad Lord",
			"Jose A. Ferrer",
			"Matt Waldron",
		},
		CohortFreeAgents: {
			"Dylan Cease",
			"Framber Valdez",
			"Ranger Suárez",
			"Nick Martinez",
			"Chris Bassitt",
			"Michael King",
			"Zac Gallen",
			"Merrill Kelly",
			"Zack Littell",
			"Patrick Corbin",
			"Erick Fedde",
			"Justin Verlander",
			"Zach Eflin",
			"Miles Mikolas",
			"Nestor Cortes",
			"Adrian Houser",
			"Tyler Mahle",
			"Lucas Giolito",
			"Andrew Heaney",
			"Michael Lorenzen",
			"Jose Quintana",
			"Aaron Civale",
			"Chris Paddack",
			"Tyler Anderson",
			"Michael Soroka",
			"Jon Gray",
			"Martín Pérez",
			"Griffin Canning",
			"Chris Flexen",
			"Marcus Stroman",
			"Max Scherzer",
			"Austin Gomber",
			"Cal Quantrill",
			"Dustin May",
			"Paul Blackburn",
			"Jordan Montgomery",
			"JT Brubaker",
			"Germán Márquez",
			"Tomoyuki Sugano",
			"José Ureña",
			"José Urquidy",
			"Tony Gonsolin",
			"Kenta Maeda",
			"Mike Clevinger",
			"Wade Miley",
			"Walker Buehler",
			"Anthony DeSclafani",
		},
	}
}
