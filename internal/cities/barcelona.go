package cities

import "github.com/Abla25/roomradar/internal/zone"

// Barcelona and metropolitan area. Mapping order is the inference tie-break
// order; do not reorder.
var barcelona = &City{
	Name:        "barcelona",
	DisplayName: "Barcelona",
	MacroZones: []zone.Mapping{
		{Zone: "Ciutat Vella", Tokens: []string{
			"ciutat vella", "barri gotic", "el gotic", "gotic", "el born", "born",
			"la ribera", "ribera", "sant pere", "santa caterina", "barceloneta", "el raval", "raval",
		}},
		{Zone: "Eixample", Tokens: []string{
			"eixample", "dreta de l eixample", "dreta de leixample", "esquerra de l eixample",
			"esquerra de leixample", "sagrada familia", "fort pienc", "sant antoni",
		}},
		{Zone: "Gràcia", Tokens: []string{
			"gracia", "vila de gracia", "camp d en grassot", "vallcarca", "el coll",
			"camp d en grassot i grcia nova", "gracia nova",
		}},
		{Zone: "Horta Guinardó", Tokens: []string{
			"horta", "guinardo", "el carmel", "can baro", "vall d hebron", "montbau",
			"la font d en fargues",
		}},
		{Zone: "Les Corts", Tokens: []string{
			"les corts", "pedralbes", "la maternitat i sant ramon", "sant ramon",
		}},
		{Zone: "Nou Barris", Tokens: []string{
			"nou barris", "porta", "prosperitat", "vilapicina", "canyelles", "la guineueta",
			"ciutat meridiana", "trinitat nova", "torre baro", "les roquetes",
		}},
		{Zone: "Sant Andreu", Tokens: []string{
			"sant andreu", "la sagrera", "trinitat vella", "bon pastor", "baro de viver", "navas",
		}},
		{Zone: "Sant Martí", Tokens: []string{
			"sant marti", "poblenou", "el poblenou", "diagonal mar", "el besos i el maresme",
			"besos", "el clot", "clot", "camp de l arpa", "camp de l arpa del clot",
			"vila olimpica", "provencals del poblenou", "provenals del poblenou", "22@",
		}},
		{Zone: "Sants-Montjuïc", Tokens: []string{
			"sants", "hostafrancs", "poble sec", "badal", "la marina", "montjuic", "zona franca",
		}},
		{Zone: "Sarrià-Sant Gervasi", Tokens: []string{
			"sarria", "les tres torres", "sant gervasi", "galvany", "la bonanova", "bonanova",
			"vallvidrera", "tibidabo", "les planes",
		}},
		{Zone: "Badalona", Tokens: []string{
			"badalona", "badal", "can bofarull", "can roca i roca", "casagemes", "canyet",
			"dalt la villa", "la salut", "morera", "progres", "remei", "sant roc", "sant roc de badalona",
		}},
		{Zone: "Santa Coloma de Gramenet", Tokens: []string{
			"santa coloma de gramenet", "santa coloma", "can peixauet", "fondo", "la salut",
			"morro de nou", "sant roc", "sant roc de santa coloma", "singuerlin",
		}},
		{Zone: "L'Hospitalet de Llobregat", Tokens: []string{
			"l hospitalet de llobregat", "l hospitalet", "hospitalet", "bellvitge", "can serra",
			"centre", "collblanc", "el gornal", "la florida", "la marina", "la torrassa",
			"pubilla cases", "sant josep", "santa eulalia",
		}},
	},
}
