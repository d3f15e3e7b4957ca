// Package libraries holds the fixed directory of nearby public and
// university libraries shown on the map screen. The data is static
// reference material; rendering it is the UI layer's concern.
package libraries

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Lat float64
	Lng float64
}

type Library struct {
	ID           int
	Name         string
	Address      string
	Phone        string
	Email        string
	Website      string
	Description  string
	Location     Coordinates
	OpeningHours string
	Facilities   []string
}

var directory = []Library{
	{
		ID:           1,
		Name:         "Perpustakaan Daerah Jawa Barat",
		Address:      "Jl. Kawaluyaan Indah II No.4, Sukajadi, Bandung",
		Phone:        "(022) 203-1234",
		Email:        "info@dispusipda.jabarprov.go.id",
		Website:      "https://dispusipda.jabarprov.go.id",
		Description:  "West Java's main regional library with a full collection",
		Location:     Coordinates{Lat: -6.9175, Lng: 107.6191},
		OpeningHours: "Mon-Fri: 08:00-16:00, Sat: 08:00-12:00",
		Facilities:   []string{"WiFi", "Reading Room", "Discussion Room", "Digital Collection"},
	},
	{
		ID:           2,
		Name:         "Perpustakaan Kota Bandung",
		Address:      "Jl. Braga No.99, Braga, Sumur Bandung, Bandung",
		Phone:        "(022) 420-1667",
		Email:        "perpustakaan@bandung.go.id",
		Website:      "https://perpustakaan.bandung.go.id",
		Description:  "City library in a historic colonial building",
		Location:     Coordinates{Lat: -6.9214, Lng: 107.6089},
		OpeningHours: "Mon-Fri: 08:00-17:00, Sat: 08:00-15:00",
		Facilities:   []string{"WiFi", "Reading Room", "Seminar Room", "Rare Collection"},
	},
	{
		ID:           3,
		Name:         "Perpustakaan Pusat ITB",
		Address:      "Jl. Ganesha No.10, Lb. Siliwangi, Coblong, Bandung",
		Phone:        "(022) 250-0085",
		Email:        "perpustakaan@itb.ac.id",
		Website:      "https://lib.itb.ac.id",
		Description:  "Central library of the Bandung Institute of Technology",
		Location:     Coordinates{Lat: -6.8882, Lng: 107.6082},
		OpeningHours: "Mon-Fri: 08:00-22:00, Sat: 08:00-17:00",
		Facilities:   []string{"WiFi", "Reading Room", "Discussion Room", "Digital Collection", "Seminar Room"},
	},
	{
		ID:           4,
		Name:         "Kandaga Unpad",
		Address:      "Jl. Raya Bandung-Sumedang KM.21, Jatinangor, Sumedang",
		Phone:        "(022) 779-4120",
		Email:        "kandaga@unpad.ac.id",
		Website:      "https://kandaga.unpad.ac.id",
		Description:  "Central library of Padjadjaran University",
		Location:     Coordinates{Lat: -6.9283, Lng: 107.7755},
		OpeningHours: "Mon-Fri: 08:00-21:00, Sat: 08:00-16:00",
		Facilities:   []string{"WiFi", "Reading Room", "Discussion Room", "Digital Collection"},
	},
	{
		ID:           5,
		Name:         "Perpustakaan UPI",
		Address:      "Jl. Dr. Setiabudhi No.229, Isola, Sukasari, Bandung",
		Phone:        "(022) 201-3163",
		Email:        "perpustakaan@upi.edu",
		Website:      "https://perpustakaan.upi.edu",
		Description:  "Library of the Indonesia University of Education",
		Location:     Coordinates{Lat: -6.8609, Lng: 107.5889},
		OpeningHours: "Mon-Fri: 08:00-20:00, Sat: 08:00-15:00",
		Facilities:   []string{"WiFi", "Reading Room", "Discussion Room", "Digital Collection"},
	},
	{
		ID:           6,
		Name:         "Perpustakaan Kota Bandung - Cibeunying",
		Address:      "Jl. Cibeunying Kidul No.25, Cibeunying Kidul, Bandung",
		Phone:        "(022) 727-1234",
		Email:        "cibeunying@perpustakaan.bandung.go.id",
		Website:      "https://perpustakaan.bandung.go.id",
		Description:  "City library branch in the Cibeunying area",
		Location:     Coordinates{Lat: -6.9156, Lng: 107.6345},
		OpeningHours: "Mon-Fri: 08:00-16:00, Sat: 08:00-12:00",
		Facilities:   []string{"WiFi", "Reading Room"},
	},
}

// All returns the full directory. Callers get a copy of the slice
// header; entries themselves are shared and must not be mutated.
func All() []Library {
	out := make([]Library, len(directory))
	copy(out, directory)
	return out
}

// ByID returns the library with the given id, if any.
func ByID(id int) (*Library, bool) {
	for i := range directory {
		if directory[i].ID == id {
			lib := directory[i]
			return &lib, true
		}
	}
	return nil, false
}
