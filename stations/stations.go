// Package stations holds the fixed table of stations on the Cádiz-Sevilla
// rail corridor. The table is reference data: ordered by physical position
// along the line and never mutated at runtime.
package stations

// Station is one stop on the corridor. Position runs 1..27 from Cádiz to
// Sevilla Santa Justa; Code matches the feed's stop_id values.
type Station struct {
	Position int
	Name     string
	Code     string
}

// Line is an ordered list of corridor stations.
type Line []Station

// Corridor returns the 27 stations of the line in corridor order.
func Corridor() Line { return corridor }

var corridor = Line{
	{1, "Cádiz", "11500"},
	{2, "San Severiano", "11511"},
	{3, "Segunda Aguada", "11512"},
	{4, "Estadio", "11513"},
	{5, "Cortadura", "11514"},
	{6, "Bahía Sur", "11515"},
	{7, "San Fernando", "11502"},
	{8, "Puerto Real", "11501"},
	{9, "Las Aletas", "11516"},
	{10, "Universidad de Cádiz", "11517"},
	{11, "Valdelagrana", "11518"},
	{12, "El Puerto de Santa María", "11503"},
	{13, "El Portal", "11521"},
	{14, "Aeropuerto de Jerez", "11522"},
	{15, "Jerez de la Frontera", "11600"},
	{16, "El Cuervo", "11306"},
	{17, "Lebrija", "11305"},
	{18, "Las Cabezas de San Juan", "11304"},
	{19, "El Trobal", "11303"},
	{20, "Los Palacios", "11302"},
	{21, "Utrera", "11300"},
	{22, "Don Rodrigo", "11104"},
	{23, "Cantaelgallo", "11103"},
	{24, "Dos Hermanas", "11102"},
	{25, "Bellavista", "11101"},
	{26, "Virgen del Rocío", "11100"},
	{27, "Sevilla Santa Justa", "51003"},
}

// Codes returns the set of corridor stop codes.
func (l Line) Codes() map[string]struct{} {
	set := make(map[string]struct{}, len(l))
	for _, st := range l {
		set[st.Code] = struct{}{}
	}
	return set
}

// PositionByCode returns a station's corridor position.
func (l Line) PositionByCode(code string) (int, bool) {
	for _, st := range l {
		if st.Code == code {
			return st.Position, true
		}
	}
	return 0, false
}

// First returns the corridor's low-position terminus.
func (l Line) First() Station { return l[0] }

// Last returns the corridor's high-position terminus.
func (l Line) Last() Station { return l[len(l)-1] }
