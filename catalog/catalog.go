package catalog

import (
	"sort"
	"strconv"

	"github.com/regarstore/v0-xl-kuota-website/models"
)

// DefaultProductID is served when an unknown product id is requested.
const DefaultProductID = "2" // XL Regular

var standardInstructions = []string{
	"Beli paket data melalui website",
	"Lakukan pembayaran",
	"Masukkan nomor telepon XL Anda",
	"Paket akan aktif dalam 5-10 menit setelah pembayaran berhasil",
}

var standardTerms = []string{
	"Paket hanya berlaku untuk pengguna XL",
	"Masa aktif dihitung sejak paket berhasil diaktifkan",
	"Kuota tidak dapat digunakan untuk tethering",
	"Kecepatan internet dapat berubah tergantung jaringan dan perangkat",
}

// Catalog is the static read-only table of purchasable packages. It is built
// once at startup and never mutated.
type Catalog struct {
	products map[string]models.Product
	promos   []models.PromoCode
}

func New() *Catalog {
	return &Catalog{
		products: map[string]models.Product{
			"1": {
				ID:           "1",
				Name:         "XL Lite",
				Data:         "2 GB",
				Validity:     "7 Hari",
				Price:        15000,
				Description:  "Paket data XL Lite dengan kuota 2 GB untuk semua akses. Masa aktif 7 hari.",
				Features:     []string{"Kuota Utama 2 GB", "Akses Semua Aplikasi", "Kecepatan 4G"},
				Instructions: standardInstructions,
				Terms:        standardTerms,
			},
			"2": {
				ID:           "2",
				Name:         "XL Regular",
				Data:         "8 GB",
				Validity:     "30 Hari",
				Price:        50000,
				Description:  "Paket data XL Regular dengan kuota 8 GB untuk semua akses. Masa aktif 30 hari.",
				Features:     []string{"Kuota Utama 8 GB", "Akses Semua Aplikasi", "Kecepatan 4G", "Bonus Nelpon 30 Menit"},
				Instructions: standardInstructions,
				Terms:        standardTerms,
				Popular:      true,
			},
			"3": {
				ID:           "3",
				Name:         "XL Premium",
				Data:         "16 GB",
				Validity:     "30 Hari",
				Price:        80000,
				Description:  "Paket data XL Premium dengan kuota 16 GB untuk semua akses. Masa aktif 30 hari.",
				Features:     []string{"Kuota Utama 16 GB", "Akses Semua Aplikasi", "Kecepatan 4G", "Bonus Nelpon 60 Menit", "Bonus SMS 100 Pesan"},
				Instructions: standardInstructions,
				Terms:        standardTerms,
			},
			"4": {
				ID:           "4",
				Name:         "XL Super",
				Data:         "32 GB",
				Validity:     "30 Hari",
				Price:        120000,
				Description:  "Paket data XL Super dengan kuota 32 GB untuk semua akses. Masa aktif 30 hari.",
				Features:     []string{"Kuota Utama 32 GB", "Akses Semua Aplikasi", "Kecepatan 4G", "Bonus Nelpon 100 Menit", "Bonus SMS 200 Pesan"},
				Instructions: standardInstructions,
				Terms:        standardTerms,
			},
			"5": {
				ID:           "5",
				Name:         "XL Unlimited",
				Data:         "Unlimited",
				Validity:     "30 Hari",
				Price:        200000,
				Description:  "Paket data XL Unlimited dengan kuota tanpa batas untuk semua akses. Masa aktif 30 hari.",
				Features:     []string{"Kuota Utama Unlimited", "Akses Semua Aplikasi", "Kecepatan 4G", "Bonus Nelpon Unlimited", "Bonus SMS Unlimited"},
				Instructions: standardInstructions,
				Terms: []string{
					"Paket hanya berlaku untuk pengguna XL",
					"Masa aktif dihitung sejak paket berhasil diaktifkan",
					"Fair usage policy berlaku",
					"Kecepatan internet dapat berubah tergantung jaringan dan perangkat",
				},
			},
			"6": {
				ID:           "6",
				Name:         "XL Mini",
				Data:         "1 GB",
				Validity:     "1 Hari",
				Price:        5000,
				Description:  "Paket data XL Mini dengan kuota 1 GB untuk semua akses. Masa aktif 1 hari.",
				Features:     []string{"Kuota Utama 1 GB", "Akses Semua Aplikasi", "Kecepatan 4G"},
				Instructions: standardInstructions,
				Terms:        standardTerms,
			},
		},
		promos: []models.PromoCode{
			{
				Title:       "Diskon 20%",
				Description: "Dapatkan diskon 20% untuk pembelian paket XL Regular dan Premium. Berlaku hingga akhir bulan.",
				Code:        "XL20OFF",
			},
			{
				Title:       "Bonus 5GB",
				Description: "Dapatkan bonus kuota 5GB untuk pembelian paket XL Super dan Unlimited. Berlaku untuk pembelian pertama.",
				Code:        "BONUS5GB",
			},
		},
	}
}

// Get looks up a product by id. Unknown ids fall back to the default product
// instead of erroring.
func (c *Catalog) Get(id string) models.Product {
	if p, ok := c.products[id]; ok {
		return p
	}
	return c.products[DefaultProductID]
}

// Lookup is Get without the fallback, for callers that need to know whether
// the id exists.
func (c *Catalog) Lookup(id string) (models.Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

// All returns every product ordered by numeric id.
func (c *Catalog) All() []models.Product {
	out := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		a, _ := strconv.Atoi(out[i].ID)
		b, _ := strconv.Atoi(out[j].ID)
		return a < b
	})
	return out
}

// Related returns up to n other products, for the "Paket Lainnya" strip on
// the detail page.
func (c *Catalog) Related(id string, n int) []models.Product {
	out := make([]models.Product, 0, n)
	for _, p := range c.All() {
		if p.ID == id {
			continue
		}
		out = append(out, p)
		if len(out) == n {
			break
		}
	}
	return out
}

// Promos returns the promotional codes shown on the home page.
func (c *Catalog) Promos() []models.PromoCode {
	return c.promos
}

// HasPromo reports whether the code matches a known promo.
func (c *Catalog) HasPromo(code string) bool {
	for _, p := range c.promos {
		if p.Code == code {
			return true
		}
	}
	return false
}
