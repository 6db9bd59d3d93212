// Package pnp maps 3-letter PNP manufacturer IDs to vendor names.
//
// The table covers common display and laptop panel vendors. It is a subset
// of the UEFI PNP ID registry.
package pnp

var vendors = map[string]string{
	"AAC": "AcerView",
	"ACI": "Ancor Communications Inc",
	"ACR": "Acer Technologies",
	"AOC": "AOC",
	"APP": "Apple Computer Inc",
	"AUO": "AU Optronics",
	"AUS": "ASUSTek COMPUTER INC",
	"BNQ": "BenQ Corporation",
	"BOE": "BOE",
	"CMN": "Chimei Innolux Corporation",
	"CMO": "Chi Mei Optoelectronics corp.",
	"DEL": "Dell Inc.",
	"ENC": "Eizo Nanao Corporation",
	"FUS": "Fujitsu Siemens Computers GmbH",
	"GBT": "GIGA-BYTE TECHNOLOGY CO., LTD.",
	"GSM": "Goldstar Company Ltd",
	"HPN": "HP Inc.",
	"HSD": "HannStar Display Corp",
	"HWP": "Hewlett Packard",
	"IVM": "Iiyama North America",
	"IVO": "InfoVision Optoelectronics (Kunshan) Co.,Ltd",
	"LEN": "Lenovo Group Limited",
	"LGD": "LG Display",
	"MEI": "Panasonic Industry Company",
	"MSI": "Microstep",
	"NEC": "NEC Corporation",
	"PHL": "Philips Consumer Electronics Company",
	"SAM": "Samsung Electric Company",
	"SDC": "Samsung Display Corp.",
	"SEC": "Seiko Epson Corporation",
	"SHP": "Sharp Corporation",
	"SNY": "Sony",
	"TSB": "Toshiba America Info Systems Inc",
	"VSC": "ViewSonic Corporation",
}

// Lookup returns the vendor name registered for a PNP ID.
func Lookup(id string) (string, bool) {
	name, ok := vendors[id]
	return name, ok
}
