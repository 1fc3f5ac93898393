package apifootball

const liveFixturesJSON = `[
	{
		"fixture": {"id": 1001, "date": "2024-05-01T19:00:00+00:00", "timestamp": 1714590000,
			"venue": {"name": "Santiago Bernabéu", "city": "Madrid"},
			"status": {"long": "Second Half", "short": "2H", "elapsed": 74}},
		"league": {"id": 140, "name": "La Liga", "country": "Spain", "logo": "https://media.api-sports.io/football/leagues/140.png", "season": 2023},
		"teams": {"home": {"id": 541, "name": "Real Madrid", "logo": "https://media.api-sports.io/football/teams/541.png"},
			"away": {"id": 529, "name": "Barcelona", "logo": "https://media.api-sports.io/football/teams/529.png"}},
		"goals": {"home": 2, "away": 1}
	},
	{
		"fixture": {"id": 1002, "date": "2024-05-01T19:30:00+00:00", "timestamp": 1714591800,
			"venue": {"name": null, "city": null},
			"status": {"long": "First Half", "short": "1H", "elapsed": null}},
		"league": {"id": 39, "name": "Premier League", "logo": "https://media.api-sports.io/football/leagues/39.png", "season": 2023},
		"teams": {"home": {"id": 50, "name": "Manchester City", "logo": "m.png"}, "away": {"id": 42, "name": "Arsenal", "logo": "a.png"}},
		"goals": {"home": null, "away": null}
	}
]`

const upcomingFixturesJSON = `[
	{
		"fixture": {"id": 2001, "date": "2024-05-04T14:00:00+00:00", "timestamp": 1714831200,
			"status": {"long": "Not Started", "short": "NS", "elapsed": null}},
		"league": {"id": 140, "name": "La Liga", "logo": "laliga.png", "season": 2023},
		"teams": {"home": {"id": 530, "name": "Atletico Madrid", "logo": "atm.png"}, "away": {"id": 536, "name": "Sevilla", "logo": "sev.png"}},
		"goals": {"home": null, "away": null}
	}
]`

const finishedFixtureJSON = `[
	{
		"fixture": {"id": 3001, "date": "2023-03-19T20:00:00+00:00", "timestamp": 1679256000,
			"venue": {"name": "Camp Nou"},
			"status": {"long": "Match Finished", "short": "FT", "elapsed": 90}},
		"league": {"id": 140, "name": "La Liga", "logo": "laliga.png", "season": 2022},
		"teams": {"home": {"id": 529, "name": "Barcelona", "logo": "fcb.png"}, "away": {"id": 541, "name": "Real Madrid", "logo": "rma.png"}},
		"goals": {"home": 2, "away": 1}
	}
]`

const headToHeadJSON = `[
	{
		"fixture": {"id": 11, "date": "2022-10-16T14:15:00+00:00", "status": {"short": "FT"}},
		"league": {"name": "La Liga"},
		"teams": {"home": {"name": "Real Madrid"}, "away": {"name": "Barcelona"}},
		"goals": {"home": 3, "away": 1}
	},
	{
		"fixture": {"id": 12, "date": "2023-03-19T20:00:00+00:00", "status": {"short": "FT"}},
		"league": {"name": "La Liga"},
		"teams": {"home": {"name": "Barcelona"}, "away": {"name": "Real Madrid"}},
		"goals": {"home": 2, "away": 1}
	},
	{
		"fixture": {"id": 13, "date": "2023-03-02T20:00:00+00:00", "status": {"short": "FT"}},
		"league": {"name": "Copa del Rey"},
		"teams": {"home": {"name": "Real Madrid"}, "away": {"name": "Barcelona"}},
		"goals": {"home": 0, "away": 1}
	}
]`

const teamJSON = `[
	{
		"team": {"id": 541, "name": "Real Madrid", "code": "REA", "country": "Spain", "founded": 1902, "logo": "https://media.api-sports.io/football/teams/541.png"},
		"venue": {"id": 1456, "name": "Estadio Santiago Bernabéu", "city": "Madrid"}
	}
]`

const squadJSON = `[
	{
		"team": {"id": 541, "name": "Real Madrid"},
		"players": [
			{"id": 44, "name": "Thibaut Courtois", "number": 1, "position": "Goalkeeper", "photo": "https://media.api-sports.io/football/players/44.png"},
			{"id": 738, "name": "David Alaba", "number": 4, "position": "Defender", "photo": "alaba.png"},
			{"id": 157209, "name": "Jude Bellingham", "number": 5, "position": "Midfielder", "photo": "jude.png"},
			{"id": 50130, "name": "Vinícius Júnior", "number": 7, "position": "Attacker", "photo": "vini.png"},
			{"id": 9999, "name": "Carlo Ancelotti", "number": null, "position": "Manager", "photo": null}
		]
	}
]`

const statisticsJSON = `[
	{
		"team": {"id": 541, "name": "Real Madrid"},
		"statistics": [
			{"type": "Ball Possession", "value": "55%"},
			{"type": "Total Shots", "value": 12},
			{"type": "Corner Kicks", "value": null},
			{"type": "Passes %", "value": "88%"}
		]
	},
	{
		"team": {"id": 529, "name": "Barcelona"},
		"statistics": [
			{"type": "Total Shots", "value": 8},
			{"type": "Ball Possession", "value": "45%"},
			{"type": "Corner Kicks", "value": null},
			{"type": "Passes %", "value": "82%"},
			{"type": "Red Cards", "value": 1}
		]
	}
]`
