package catalog

import (
	"github.com/alpacahq/holidaystore/utils/log"
)

// ColombiaYAML is the national holiday catalog of Colombia. Holidays under
// the Emiliani law are observed on the following Monday.
const ColombiaYAML = `
holidays:
  - {id: 1, name: "Año nuevo", type: fixed, day: 1, month: 1}
  - {id: 2, name: "Santos Reyes", type: fixed_moved_to_monday, day: 6, month: 1}
  - {id: 3, name: "San José", type: fixed_moved_to_monday, day: 19, month: 3}
  - {id: 4, name: "Jueves Santo", type: easter_relative, easter_offset_days: -3}
  - {id: 5, name: "Viernes Santo", type: easter_relative, easter_offset_days: -2}
  - {id: 6, name: "Domingo de Pascua", type: easter_relative, easter_offset_days: 0}
  - {id: 7, name: "Día del Trabajo", type: fixed, day: 1, month: 5}
  - {id: 8, name: "Ascensión del Señor", type: easter_relative_moved_to_monday, easter_offset_days: 40}
  - {id: 9, name: "Corpus Christi", type: easter_relative_moved_to_monday, easter_offset_days: 61}
  - {id: 10, name: "Sagrado Corazón de Jesús", type: easter_relative_moved_to_monday, easter_offset_days: 68}
  - {id: 11, name: "San Pedro y San Pablo", type: fixed_moved_to_monday, day: 29, month: 6}
  - {id: 12, name: "Independencia de Colombia", type: fixed, day: 20, month: 7}
  - {id: 13, name: "Batalla de Boyacá", type: fixed, day: 7, month: 8}
  - {id: 14, name: "Asunción de la Virgen", type: fixed_moved_to_monday, day: 15, month: 8}
  - {id: 15, name: "Día de la Raza", type: fixed_moved_to_monday, day: 12, month: 10}
  - {id: 16, name: "Todos los Santos", type: fixed_moved_to_monday, day: 1, month: 11}
  - {id: 17, name: "Independencia de Cartagena", type: fixed_moved_to_monday, day: 11, month: 11}
  - {id: 18, name: "Inmaculada Concepción", type: fixed, day: 8, month: 12}
  - {id: 19, name: "Navidad", type: fixed, day: 25, month: 12}
`

// Colombia is the built-in catalog.
var Colombia = mustParse(ColombiaYAML)

// Default returns the built-in catalog.
func Default() *Catalog {
	return Colombia
}

func mustParse(data string) *Catalog {
	c, err := Parse([]byte(data), FormatYAML)
	if err != nil {
		log.Fatal("failed to parse built-in catalog: %v", err)
	}
	return c
}
