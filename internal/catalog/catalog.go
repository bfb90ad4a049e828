// Package catalog holds the static art collection games deal from.
package catalog

import "math/rand"

// Artist is the display name of a painter. 30 artists, 3 works each.
type Artist string

const (
	VanGogh      Artist = "Vincent van Gogh"
	Monet        Artist = "Claude Monet"
	Renoir       Artist = "Pierre-Auguste Renoir"
	Picasso      Artist = "Pablo Picasso"
	Dali         Artist = "Salvador Dalí"
	Warhol       Artist = "Andy Warhol"
	Klimt        Artist = "Gustav Klimt"
	Rembrandt    Artist = "Rembrandt van Rijn"
	DaVinci      Artist = "Leonardo da Vinci"
	Michelangelo Artist = "Michelangelo Buonarroti"
	Raphael      Artist = "Raffaello Sanzio"
	Caravaggio   Artist = "Michelangelo Merisi da Caravaggio"
	Vermeer      Artist = "Johannes Vermeer"
	FridaKahlo   Artist = "Frida Kahlo"
	Matisse      Artist = "Henri Matisse"
	Cezanne      Artist = "Paul Cézanne"
	Gauguin      Artist = "Paul Gauguin"
	Seurat       Artist = "Georges Seurat"
	Kandinsky    Artist = "Wassily Kandinsky"
	Mondrian     Artist = "Piet Mondrian"
	Pollock      Artist = "Jackson Pollock"
	Rothko       Artist = "Mark Rothko"
	Basquiat     Artist = "Jean-Michel Basquiat"
	Hopper       Artist = "Edward Hopper"
	Munch        Artist = "Edvard Munch"
	Bruegel      Artist = "Pieter Bruegel the Elder"
	Bosch        Artist = "Hieronymus Bosch"
	ElGreco      Artist = "El Greco"
	Botticelli   Artist = "Sandro Botticelli"
	Titian       Artist = "Titian"
)

// Movement is an art movement. 10 movements, 9 works each.
type Movement string

const (
	Renaissance           Movement = "Renaissance"
	Baroque               Movement = "Baroque"
	Impressionism         Movement = "Impressionism"
	PostImpressionism     Movement = "Post-Impressionism"
	Cubism                Movement = "Cubism"
	Surrealism            Movement = "Surrealism"
	PopArt                Movement = "Pop Art"
	AbstractExpressionism Movement = "Abstract Expressionism"
	ArtNouveau            Movement = "Art Nouveau"
	Expressionism         Movement = "Expressionism"
)

// Piece is an immutable art piece. Stars rate value from 1 to 3.
type Piece struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Artist   Artist   `json:"artist"`
	Movement Movement `json:"movement"`
	Stars    int      `json:"stars"`
}

var pieces = []Piece{
	{1, "The Starry Night", VanGogh, PostImpressionism, 3},
	{2, "Sunflowers", VanGogh, PostImpressionism, 2},
	{3, "The Bedroom", VanGogh, PostImpressionism, 2},
	{4, "Water Lilies", Monet, Impressionism, 3},
	{5, "Impression, Sunrise", Monet, Impressionism, 3},
	{6, "Woman with a Parasol", Monet, Impressionism, 2},
	{7, "Dance at Le Moulin de la Galette", Renoir, Impressionism, 3},
	{8, "Luncheon of the Boating Party", Renoir, Impressionism, 2},
	{9, "Girl with a Hoop", Renoir, Impressionism, 1},
	{10, "Guernica", Picasso, Cubism, 3},
	{11, "Les Demoiselles d'Avignon", Picasso, Cubism, 3},
	{12, "The Weeping Woman", Picasso, Cubism, 2},
	{13, "The Persistence of Memory", Dali, Surrealism, 3},
	{14, "The Elephants", Dali, Surrealism, 2},
	{15, "Swans Reflecting Elephants", Dali, Surrealism, 2},
	{16, "Campbell's Soup Cans", Warhol, PopArt, 3},
	{17, "Marilyn Diptych", Warhol, PopArt, 3},
	{18, "Eight Elvises", Warhol, PopArt, 2},
	{19, "The Kiss", Klimt, ArtNouveau, 3},
	{20, "Portrait of Adele Bloch-Bauer I", Klimt, ArtNouveau, 3},
	{21, "The Tree of Life", Klimt, ArtNouveau, 2},
	{22, "The Night Watch", Rembrandt, Baroque, 3},
	{23, "Self-Portrait with Two Circles", Rembrandt, Baroque, 2},
	{24, "The Anatomy Lesson", Rembrandt, Baroque, 2},
	{25, "Mona Lisa", DaVinci, Renaissance, 3},
	{26, "The Last Supper", DaVinci, Renaissance, 3},
	{27, "Vitruvian Man", DaVinci, Renaissance, 2},
	{28, "The Creation of Adam", Michelangelo, Renaissance, 3},
	{29, "David", Michelangelo, Renaissance, 3},
	{30, "The Last Judgment", Michelangelo, Renaissance, 2},
	{31, "The School of Athens", Raphael, Renaissance, 3},
	{32, "The Sistine Madonna", Raphael, Renaissance, 2},
	{33, "The Transfiguration", Raphael, Renaissance, 2},
	{34, "The Calling of St Matthew", Caravaggio, Baroque, 3},
	{35, "Judith Beheading Holofernes", Caravaggio, Baroque, 2},
	{36, "The Conversion of St Paul", Caravaggio, Baroque, 2},
	{37, "Girl with a Pearl Earring", Vermeer, Baroque, 3},
	{38, "The Milkmaid", Vermeer, Baroque, 2},
	{39, "View of Delft", Vermeer, Baroque, 1},
	{40, "The Two Fridas", FridaKahlo, Surrealism, 3},
	{41, "Self-Portrait with Thorn Necklace", FridaKahlo, Surrealism, 2},
	{42, "The Broken Column", FridaKahlo, Surrealism, 2},
	{43, "The Dance", Matisse, PostImpressionism, 3},
	{44, "Blue Nude", Matisse, PostImpressionism, 2},
	{45, "The Red Studio", Matisse, PostImpressionism, 2},
	{46, "The Card Players", Cezanne, PostImpressionism, 3},
	{47, "Mont Sainte-Victoire", Cezanne, PostImpressionism, 2},
	{48, "The Bathers", Cezanne, PostImpressionism, 2},
	{49, "Where Do We Come From?", Gauguin, PostImpressionism, 3},
	{50, "The Yellow Christ", Gauguin, PostImpressionism, 2},
	{51, "Tahitian Women on the Beach", Gauguin, PostImpressionism, 1},
	{52, "A Sunday on La Grande Jatte", Seurat, PostImpressionism, 3},
	{53, "Bathers at Asnières", Seurat, PostImpressionism, 2},
	{54, "The Circus", Seurat, PostImpressionism, 1},
	{55, "Composition VIII", Kandinsky, AbstractExpressionism, 3},
	{56, "Yellow-Red-Blue", Kandinsky, AbstractExpressionism, 2},
	{57, "Squares with Concentric Circles", Kandinsky, AbstractExpressionism, 2},
	{58, "Composition with Red, Blue and Yellow", Mondrian, AbstractExpressionism, 3},
	{59, "Broadway Boogie Woogie", Mondrian, AbstractExpressionism, 2},
	{60, "Victory Boogie Woogie", Mondrian, AbstractExpressionism, 1},
	{61, "No. 5, 1948", Pollock, AbstractExpressionism, 3},
	{62, "Blue Poles", Pollock, AbstractExpressionism, 2},
	{63, "Autumn Rhythm", Pollock, AbstractExpressionism, 2},
	{64, "Orange, Red, Yellow", Rothko, AbstractExpressionism, 3},
	{65, "No. 61 (Rust and Blue)", Rothko, AbstractExpressionism, 2},
	{66, "White Center", Rothko, AbstractExpressionism, 1},
	{67, "Untitled (1982)", Basquiat, PopArt, 3},
	{68, "Hollywood Africans", Basquiat, PopArt, 2},
	{69, "Irony of Negro Policeman", Basquiat, PopArt, 1},
	{70, "Nighthawks", Hopper, Expressionism, 3},
	{71, "Automat", Hopper, Expressionism, 2},
	{72, "Morning Sun", Hopper, Expressionism, 1},
	{73, "The Scream", Munch, Expressionism, 3},
	{74, "The Madonna", Munch, Expressionism, 2},
	{75, "The Sick Child", Munch, Expressionism, 2},
	{76, "The Tower of Babel", Bruegel, Renaissance, 3},
	{77, "The Hunters in the Snow", Bruegel, Renaissance, 2},
	{78, "Netherlandish Proverbs", Bruegel, Renaissance, 1},
	{79, "The Garden of Earthly Delights", Bosch, Renaissance, 3},
	{80, "The Haywain Triptych", Bosch, Renaissance, 2},
	{81, "The Temptation of St. Anthony", Bosch, Renaissance, 1},
	{82, "The Burial of the Count of Orgaz", ElGreco, Baroque, 3},
	{83, "View of Toledo", ElGreco, Baroque, 2},
	{84, "The Disrobing of Christ", ElGreco, Baroque, 1},
	{85, "The Birth of Venus", Botticelli, Renaissance, 3},
	{86, "Primavera", Botticelli, Renaissance, 3},
	{87, "The Adoration of the Magi", Botticelli, Renaissance, 1},
	{88, "Assumption of the Virgin", Titian, Renaissance, 3},
	{89, "Venus of Urbino", Titian, Renaissance, 2},
	{90, "Bacchus and Ariadne", Titian, Renaissance, 1},
}

// Size reports how many pieces the catalog holds.
func Size() int { return len(pieces) }

// Draw returns n distinct pieces in shuffled order. n is clamped to
// [1, Size()]. The returned slice is a copy; the catalog itself is
// never mutated.
func Draw(n int) []Piece {
	if n < 1 {
		n = 1
	}
	if n > len(pieces) {
		n = len(pieces)
	}
	deck := make([]Piece, len(pieces))
	copy(deck, pieces)
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck[:n]
}
