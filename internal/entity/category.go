package entity

import (
	"time"

	"github.com/ISLASKRIGA/IMony3/pkg/nlp"
)

// Category is one entry of the user's category registry. Order of the
// registry is significant: keyword-score ties during classification are won
// by the first-registered category.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Emoji     string    `json:"emoji"`
	Color     string    `json:"color"`
	Selected  bool      `json:"selected"`
	Priority  float64   `json:"priority"`
	Keywords  []string  `json:"keywords"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot converts a registry slice into the pipeline's read-only view.
func Snapshot(categories []Category) []nlp.Category {
	snapshot := make([]nlp.Category, 0, len(categories))
	for _, c := range categories {
		snapshot = append(snapshot, nlp.Category{
			ID:       c.ID,
			Name:     c.Name,
			Emoji:    c.Emoji,
			Selected: c.Selected,
			Priority: c.Priority,
			Keywords: c.Keywords,
		})
	}
	return snapshot
}

// Emoji and color pools for user-created categories.
var (
	NewCategoryEmojis = []string{"🎯", "🎨", "📚", "🏋️", "🎵", "✈️", "🏠", "💼", "🎓", "⚽"}
	NewCategoryColors = []string{"#5856D6", "#FF9500", "#FF2D55", "#34C759", "#00C7BE", "#AF52DE"}
)

// DefaultCategories returns the seed registry: the nine stock categories with
// their keyword tables. "Lujo" and "Comer afuera" carry priority boosts so
// their specific keywords beat generic ones of the same length.
func DefaultCategories() []Category {
	return []Category{
		{
			ID: "compras", Name: "Compras", Emoji: "🛍️", Color: "#5856D6", Selected: true, Priority: 1.0, Position: 1,
			Keywords: []string{
				// supermarkets and corner stores
				"super", "supermercado", "mandado", "despensa", "tienda", "abarrotes",
				"walmart", "soriana", "chedraui", "aurrera", "costco", "sams", "oxxo", "seven",
				// staples
				"leche", "huevo", "pan", "tortillas", "jamón", "queso", "cereal",
				"fruta", "verdura", "carne", "pollo", "pescado",
				"papel", "jabón", "shampoo", "pasta de dientes",
				// snacks and store slang
				"chuchulucos", "botana", "frituras", "papas", "sabritas", "doritos",
				"gansito", "pingüinos", "chocotorro", "galletas", "chicles", "dulces",
				"cigarros", "vape", "pod",
			},
		},
		{
			ID: "ropa", Name: "Ropa", Emoji: "👔", Color: "#FF9500", Selected: true, Priority: 1.0, Position: 2,
			Keywords: []string{
				"ropa", "camisa", "playera", "pantalón", "jeans", "vestido", "falda",
				"zapatos", "tenis", "botas", "sandalias", "tacones",
				"ropa interior", "calzones", "calcetin", "brasier",
				"bolsa", "cartera", "mochila", "cinturón", "lentes", "reloj",
				"gorra", "sombrero",
				"trapos", "garras", "pilcha", "estrenar", "outfit", "looks",
				"chanclas", "huaraches", "zapas", "sneakers", "kick",
				"zara", "h&m", "shein", "nike", "adidas", "puma",
			},
		},
		{
			ID: "comer_afuera", Name: "Comer afuera", Emoji: "🍔", Color: "#FF2D55", Selected: true, Priority: 1.2, Position: 3,
			Keywords: []string{
				"restaurante", "comida", "cena", "desayuno", "almuerzo",
				"hamburguesa", "pizza", "tacos", "torta", "burrito", "sushi", "pollo", "carne",
				"papas", "hot dog", "hotdog", "sandwich", "quesadilla", "enchilada",
				"chilaquiles", "pozole", "menudo", "birria", "barbacoa", "carnitas", "tamales",
				"elote", "esquite", "tostada", "gordita", "sope", "huarache", "pambazo",
				"lonche", "cemita", "molletes", "sincronizada", "gringa", "volcanes",
				"alitas", "wings", "boneless", "nuggets",
				// street-food slang
				"jochos", "dogos", "tacubos", "tacos de canasta", "tacos de guisado",
				"garnacha", "antojito", "vitamina t", "el bajón", "munchies",
				"chesco", "refresco", "soda", "coca", "fresca", "boing",
				"café", "cafecito", "frappé", "malteada", "licuado", "jugo",
				// desserts
				"helado", "nieve", "paleta", "churro", "pan dulce", "concha", "dona",
				"mcflurry", "sundae", "blizzard", "marquesita", "crepa",
			},
		},
		{
			ID: "lujo", Name: "Lujo", Emoji: "💎", Color: "#AF52DE", Selected: false, Priority: 1.5, Position: 4,
			Keywords: []string{
				"lujo", "premium", "exclusivo", "bienes",
				"joyas", "oro", "plata", "diamante",
				"reloj fino", "rolex", "cartier",
				"spa", "masaje", "tratamiento", "facial", "botox",
				"versace", "gucci", "louis vuitton", "prada", "hermes", "chanel",
				"balenciaga", "fendi", "dior", "yves saint laurent", "ysl",
				"ferrari", "porsche", "mercedes", "bmw", "audi", "tesla",
			},
		},
		{
			ID: "auto", Name: "Auto", Emoji: "🚗", Color: "#00C7BE", Selected: false, Priority: 1.0, Position: 5,
		},
		{
			ID: "mascotas", Name: "Mascotas", Emoji: "🐶", Color: "#34C759", Selected: false, Priority: 1.0, Position: 6,
		},
		{
			ID: "transporte", Name: "Transporte", Emoji: "🚌", Color: "#5856D6", Selected: true, Priority: 1.0, Position: 7,
			Keywords: []string{
				"uber", "didi", "cabify", "beat", "taxi", "indriver", "viaje",
				"metro", "metrobús", "camión", "combi", "micro", "pesero", "pecero",
				"ruta", "colectivo", "bus", "transporte", "pasaje", "boleto",
				"gasolina", "gas", "magna", "premium", "diesel", "diésel",
				"tanque lleno", "litros", "eché gas", "cargar gas",
				"estacionamiento", "parquímetro", "pensión", "valet", "viene viene",
				"caseta", "peaje", "tag", "pase",
				"mantenimiento", "servicio", "taller", "mecánico", "afinación", "verificación",
				"nave", "troca", "ranfla", "carro", "coche", "auto", "mueble",
			},
		},
		{
			ID: "salud", Name: "Salud", Emoji: "💊", Color: "#FF9500", Selected: false, Priority: 1.0, Position: 8,
			Keywords: []string{
				"doctor", "médico", "consulta", "cita", "especialista", "dentista", "psicólogo",
				"simi", "similares", "farmacia",
				"medicina", "pastillas", "jarabe", "antibiótico", "analgésico", "aspirina",
				"curitas", "vendas", "alcohol", "gel",
				"el doc", "chochos", "remedios", "análisis", "sangre", "rayos x",
			},
		},
		{
			ID: "entretenimiento", Name: "Entretenimiento", Emoji: "🎮", Color: "#FF2D55", Selected: false, Priority: 1.0, Position: 9,
			Keywords: []string{
				"cine", "película", "vip", "palomitas", "boletos",
				"concierto", "festival", "teatro", "museo", "feria",
				"boliche", "billar", "gotcha", "escape room",
				"fiesta", "peda", "pisteada", "pisto", "chelas", "cheve", "birra", "cerveza",
				"cubas", "tragos", "pomos", "botella", "bacardí", "bacacho", "tequila", "mezcal",
				"caguama", "caguamón", "six", "cartón", "michelada", "clamato",
				"bar", "antro", "club", "cantina", "pulquería", "terraza", "cover",
				"videojuego", "juego", "skin", "pase de batalla", "dlc",
				"netflix", "spotify", "disney", "hbo", "prime", "youtube", "twitch",
			},
		},
	}
}
