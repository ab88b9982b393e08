package fixture

var defaultRecords = []MatchRecord{
	{
		ID:             1,
		Teams:          "Leões do Bairro vs Estrela Azul",
		Date:           "05/12/2026",
		Time:           "18:00",
		Description:    "Jogo de abertura do torneio. Os campeões em título defendem o troféu frente à revelação da temporada.",
		LiveStreamLink: "https://www.youtube.com/embed/live_stream?channel=UCfutsalcup01",
	},
	{
		ID:             2,
		Teams:          "Dragões FC vs Unidos da Vila",
		Date:           "05/12/2026",
		Time:           "19:30",
		Description:    "Duelo entre os ataques mais concretizadores da fase de grupos.",
		LiveStreamLink: "https://www.youtube.com/watch?v=futsalcup02",
	},
	{
		ID:             3,
		Teams:          "Académico vs Os Tigres",
		Date:           "06/12/2026",
		Time:           "17:00",
		Description:    "Clássico regional com lotação esgotada no pavilhão municipal.",
		LiveStreamLink: "https://youtu.be/futsalcup03",
	},
	{
		ID:             4,
		Teams:          "Vencedor J1 vs Vencedor J2",
		Date:           "07/12/2026",
		Time:           "20:00",
		Description:    "Grande final. Entrega de prémios logo após o apito final.",
		LiveStreamLink: "https://player.twitch.tv/?channel=futsalcup&parent=localhost",
	},
}

// Default returns the tournament fixtures compiled into the binary.
func Default() *Catalog {
	return MustCatalog(defaultRecords)
}
