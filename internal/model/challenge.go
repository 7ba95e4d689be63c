package model

type Challenge struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Icon string `json:"icon"`
}

var defaultCatalog = []Challenge{
	{ID: "1", Text: "Medite por 10 minutos.", Icon: "person"},
	{ID: "2", Text: "Beba 2 litros de água.", Icon: "water"},
	{ID: "3", Text: "Leia um capítulo de um livro.", Icon: "book"},
	{ID: "4", Text: "Assista a filmes e séries.", Icon: "film"},
	{ID: "5", Text: "Fazer um lanche saudável.", Icon: "nutrition"},
	{ID: "6", Text: "Desconectar das redes sociais por 1 hora.", Icon: "phone-portrait"},
	{ID: "7", Text: "Fazer 15 minutos de exercícios.", Icon: "bicycle"},
	{ID: "8", Text: "Pratique um hobby.", Icon: "brush"},
	{ID: "9", Text: "Escutar uma nova música.", Icon: "musical-notes"},
	{ID: "10", Text: "Experimentar uma nova receita.", Icon: "restaurant"},
	{ID: "11", Text: "Fazer uma atividade criativa.", Icon: "color-palette"},
	{ID: "12", Text: "Organizar uma parte da casa.", Icon: "home"},
	{ID: "13", Text: "Assistir a um documentário.", Icon: "tv"},
	{ID: "14", Text: "Fazer um ato de bondade.", Icon: "heart"},
	{ID: "15", Text: "Aprender uma palavra nova em outra língua.", Icon: "language"},
	{ID: "16", Text: "Praticar uma habilidade que você quer melhorar.", Icon: "school"},
	{ID: "17", Text: "Fazer uma pausa para respirar profundamente.", Icon: "leaf"},
	{ID: "18", Text: "Jogar um jogo de tabuleiro com a família.", Icon: "game-controller"},
	{ID: "19", Text: "Fazer um planejamento para a semana.", Icon: "calendar"},
	{ID: "20", Text: "Cultive relacionamentos saudáveis.", Icon: "chatbubbles-outline"},
}

// DefaultCatalog returns a copy of the built-in challenge list.
func DefaultCatalog() []Challenge {
	return append([]Challenge(nil), defaultCatalog...)
}
