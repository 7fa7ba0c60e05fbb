package cities

import "github.com/Abla25/roomradar/internal/zone"

var rome = &City{
	Name:        "roma",
	DisplayName: "Rome",
	MacroZones: []zone.Mapping{
		{Zone: "Centro Storico", Tokens: []string{
			"centro storico", "piazza navona", "campo de fiori", "pantheon", "piazza venezia",
			"fori imperiali", "colosseo", "foro romano", "palatino", "circo massimo",
		}},
		{Zone: "Trastevere", Tokens: []string{
			"trastevere", "santa maria in trastevere", "piazza santa cecilia", "viale trastevere",
		}},
		{Zone: "Testaccio", Tokens: []string{
			"testaccio", "monte testaccio", "piazza testaccio", "via marmorata",
		}},
		{Zone: "Monti", Tokens: []string{
			"monti", "rione monti", "via nazionale", "via cavour", "piazza della madonna dei monti",
		}},
		{Zone: "Esquilino", Tokens: []string{
			"esquilino", "piazza vittorio", "via merulana", "via dello statuto", "termini",
		}},
		{Zone: "Pigneto", Tokens: []string{
			"pigneto", "via del pigneto", "via casilina", "via prenestina",
		}},
		{Zone: "San Lorenzo", Tokens: []string{
			"san lorenzo", "via tiburtina", "piazza dell immacolata", "via dei sabelli",
		}},
		{Zone: "Parioli", Tokens: []string{
			"parioli", "via archimede", "via bruxelles", "via orlando", "villa borghese",
		}},
		{Zone: "Flaminio", Tokens: []string{
			"flaminio", "piazza del popolo", "via flaminia", "piazzale flaminio", "villa glori",
		}},
		{Zone: "Prati", Tokens: []string{
			"prati", "via cola di rienzo", "via ottaviano", "piazza risorgimento", "borgo",
		}},
		{Zone: "Vaticano", Tokens: []string{
			"vaticano", "borgo pio", "via della conciliazione", "piazza san pietro",
		}},
		{Zone: "Aurelio", Tokens: []string{
			"aurelio", "via aurelia", "via della pineta sacchetti", "villa doria pamphilj",
		}},
		{Zone: "Gianicolense", Tokens: []string{
			"gianicolense", "monteverde vecchio", "via gianicolense", "piazza san cosimato",
		}},
		{Zone: "Monteverde", Tokens: []string{
			"monteverde", "monteverde nuovo", "via carini", "piazza santa maria della luce",
		}},
		{Zone: "Ostiense", Tokens: []string{
			"ostiense", "via ostiense", "garbatella", "san paolo", "basilica san paolo",
		}},
		{Zone: "Ardeatino", Tokens: []string{
			"ardeatino", "via ardeatina", "via appia antica", "catacombe", "quartiere ardeatino",
		}},
		{Zone: "Appio Latino", Tokens: []string{
			"appio latino", "via appia nuova", "piazza tuscolo", "via latina",
		}},
		{Zone: "Tuscolano", Tokens: []string{
			"tuscolano", "via tuscolana", "cinecitta", "don bosco", "appio claudio",
		}},
		{Zone: "Colli Albani", Tokens: []string{
			"colli albani", "via appia nuova", "via tuscolana", "quartiere colli albani",
		}},
		{Zone: "Eur", Tokens: []string{
			"eur", "europe", "via cristoforo colombo", "piazza marconi", "laghetto dell eur",
		}},
	},
}
