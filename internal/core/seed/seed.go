// Package seed holds the built-in graph a fresh session starts from: the
// National Democracy movement (Endecja) in interwar Poland.
package seed

import (
	"github.com/agenthands/kgraph/internal/core/model"
)

var nodes = []model.Node{
	{ID: "dmowski", Label: "Roman Dmowski", Type: model.NodeTypePerson, Dates: "1864-1939", Importance: 1.0,
		Description: "Co-founder and chief ideologue of National Democracy; delegate at the Paris Peace Conference."},
	{ID: "poplawski", Label: "Jan Ludwik Popławski", Type: model.NodeTypePerson, Dates: "1854-1908", Importance: 0.8,
		Description: "Publicist and co-founder of the National League."},
	{ID: "balicki", Label: "Zygmunt Balicki", Type: model.NodeTypePerson, Dates: "1858-1916", Importance: 0.75,
		Description: "Sociologist, author of 'National Egoism', founder of the Polish Youth Union (Zet)."},
	{ID: "grabski_s", Label: "Stanisław Grabski", Type: model.NodeTypePerson, Dates: "1871-1949", Importance: 0.7,
		Description: "Economist and National Democratic politician, minister of religious affairs and education."},
	{ID: "grabski_w", Label: "Władysław Grabski", Type: model.NodeTypePerson, Dates: "1874-1938", Importance: 0.75,
		Description: "Prime minister and treasury minister; introduced the złoty in 1924."},
	{ID: "glabinski", Label: "Stanisław Głąbiński", Type: model.NodeTypePerson, Dates: "1862-1941", Importance: 0.6,
		Description: "Leader of the Popular National Union in the Sejm."},
	{ID: "rybarski", Label: "Roman Rybarski", Type: model.NodeTypePerson, Dates: "1887-1942", Importance: 0.6,
		Description: "Economist and chairman of the National Party parliamentary club."},
	{ID: "pilsudski", Label: "Józef Piłsudski", Type: model.NodeTypePerson, Dates: "1867-1935", Importance: 0.95,
		Description: "Chief of State and principal rival of the National Democrats."},
	{ID: "giertych", Label: "Jędrzej Giertych", Type: model.NodeTypePerson, Dates: "1903-1992", Importance: 0.5,
		Description: "Young generation activist of the Camp of Great Poland."},
	{ID: "mosdorf", Label: "Jan Mosdorf", Type: model.NodeTypePerson, Dates: "1904-1943", Importance: 0.5,
		Description: "Leader of the youth movement, later of the National Radical Camp."},

	{ID: "liga_narodowa", Label: "Liga Narodowa", Type: model.NodeTypeOrganization, Dates: "1893-1928", Importance: 0.85,
		Description: "Secret National League, the conspiratorial core of the movement."},
	{ID: "snd", Label: "Stronnictwo Narodowo-Demokratyczne", Type: model.NodeTypeOrganization, Dates: "1897-1919", Importance: 0.8,
		Description: "Democratic-National Party, the open political arm of the League."},
	{ID: "zln", Label: "Związek Ludowo-Narodowy", Type: model.NodeTypeOrganization, Dates: "1919-1928", Importance: 0.7,
		Description: "Popular National Union, the National Democrats' Sejm party in the early republic."},
	{ID: "sn", Label: "Stronnictwo Narodowe", Type: model.NodeTypeOrganization, Dates: "1928-1947", Importance: 0.8,
		Description: "National Party, successor of the Popular National Union."},
	{ID: "owp", Label: "Obóz Wielkiej Polski", Type: model.NodeTypeOrganization, Dates: "1926-1933", Importance: 0.75,
		Description: "Camp of Great Poland, mass organization founded by Dmowski after the May Coup."},
	{ID: "onr", Label: "Obóz Narodowo-Radykalny", Type: model.NodeTypeOrganization, Dates: "1934", Importance: 0.6,
		Description: "National Radical Camp, a radical splinter of the young generation."},
	{ID: "knp", Label: "Komitet Narodowy Polski", Type: model.NodeTypeOrganization, Dates: "1917-1919", Importance: 0.8,
		Description: "Polish National Committee in Paris, recognized by the Entente."},

	{ID: "paris_conference", Label: "Paris Peace Conference", Type: model.NodeTypeEvent, Dates: "1919", Importance: 0.85,
		Description: "Dmowski signed the Treaty of Versailles for Poland."},
	{ID: "may_coup", Label: "May Coup", Type: model.NodeTypeEvent, Dates: "1926", Importance: 0.8,
		Description: "Piłsudski's seizure of power, which pushed the National Democrats into opposition."},
	{ID: "narutowicz_election", Label: "Election of Gabriel Narutowicz", Type: model.NodeTypeEvent, Dates: "1922", Importance: 0.6,
		Description: "Presidential election opposed by the right; followed by the president's assassination."},
	{ID: "currency_reform", Label: "Currency reform", Type: model.NodeTypeEvent, Dates: "1924", Importance: 0.55,
		Description: "Introduction of the złoty and the Bank of Poland."},
	{ID: "riga_treaty", Label: "Peace of Riga", Type: model.NodeTypeEvent, Dates: "1921", Importance: 0.6,
		Description: "Treaty ending the Polish-Soviet war; Stanisław Grabski led the border negotiations."},

	{ID: "national_egoism", Label: "National egoism", Type: model.NodeTypeConcept, Importance: 0.65,
		Description: "Ethic placing the interest of the nation above universal moral claims."},
	{ID: "incorporation", Label: "Incorporation doctrine", Type: model.NodeTypeConcept, Importance: 0.6,
		Description: "Program of a unitary state with assimilated eastern borderlands."},
	{ID: "piast_concept", Label: "Piast concept", Type: model.NodeTypeConcept, Importance: 0.6,
		Description: "Orientation toward the western lands and against Germany."},

	{ID: "mysli", Label: "Myśli nowoczesnego Polaka", Type: model.NodeTypePublication, Dates: "1903", Importance: 0.8,
		Description: "Dmowski's manifesto of modern nationalism."},
	{ID: "przeglad_wszechpolski", Label: "Przegląd Wszechpolski", Type: model.NodeTypePublication, Dates: "1895-1905", Importance: 0.6,
		Description: "The movement's principal periodical."},
	{ID: "egoizm_narodowy", Label: "Egoizm narodowy wobec etyki", Type: model.NodeTypePublication, Dates: "1902", Importance: 0.55,
		Description: "Balicki's treatise on national ethics."},
}

var edges = []model.Edge{
	{Source: "dmowski", Target: "liga_narodowa", Label: "co-founded"},
	{Source: "poplawski", Target: "liga_narodowa", Label: "co-founded"},
	{Source: "balicki", Target: "liga_narodowa", Label: "co-founded"},
	{Source: "liga_narodowa", Target: "snd", Label: "directed"},
	{Source: "dmowski", Target: "snd", Label: "led"},
	{Source: "snd", Target: "zln", Label: "succeeded by"},
	{Source: "zln", Target: "sn", Label: "succeeded by"},
	{Source: "glabinski", Target: "zln", Label: "led"},
	{Source: "rybarski", Target: "sn", Label: "led club"},
	{Source: "dmowski", Target: "owp", Label: "founded"},
	{Source: "giertych", Target: "owp", Label: "member"},
	{Source: "mosdorf", Target: "owp", Label: "member"},
	{Source: "mosdorf", Target: "onr", Label: "co-founded"},
	{Source: "onr", Target: "sn", Label: "split from"},
	{Source: "dmowski", Target: "knp", Label: "chaired"},
	{Source: "knp", Target: "paris_conference", Label: "represented Poland at"},
	{Source: "dmowski", Target: "paris_conference", Label: "signed treaty at"},
	{Source: "grabski_s", Target: "riga_treaty", Label: "negotiated"},
	{Source: "grabski_s", Target: "zln", Label: "member"},
	{Source: "grabski_w", Target: "currency_reform", Label: "carried out"},
	{Source: "grabski_s", Target: "grabski_w", Label: "brother of"},
	{Source: "pilsudski", Target: "may_coup", Label: "led"},
	{Source: "may_coup", Target: "owp", Label: "prompted"},
	{Source: "dmowski", Target: "pilsudski", Label: "rival of"},
	{Source: "zln", Target: "narutowicz_election", Label: "opposed"},
	{Source: "dmowski", Target: "mysli", Label: "wrote"},
	{Source: "mysli", Target: "national_egoism", Label: "expounds"},
	{Source: "balicki", Target: "egoizm_narodowy", Label: "wrote"},
	{Source: "egoizm_narodowy", Target: "national_egoism", Label: "defines"},
	{Source: "poplawski", Target: "przeglad_wszechpolski", Label: "edited"},
	{Source: "dmowski", Target: "przeglad_wszechpolski", Label: "edited"},
	{Source: "dmowski", Target: "incorporation", Label: "advocated"},
	{Source: "grabski_s", Target: "incorporation", Label: "advocated"},
	{Source: "poplawski", Target: "piast_concept", Label: "formulated"},
	{Source: "dmowski", Target: "piast_concept", Label: "advocated"},
}

// Nodes returns a fresh copy of the seed nodes. Metrics are zero.
func Nodes() []model.Node {
	out := make([]model.Node, len(nodes))
	copy(out, nodes)
	return out
}

// Edges returns a fresh copy of the seed edges.
func Edges() []model.Edge {
	out := make([]model.Edge, len(edges))
	copy(out, edges)
	return out
}
