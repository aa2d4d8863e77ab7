package services

import "github.com/dmitrijs2005/levelup/internal/client/models"

// bootstrapProducts returns the fixed seed set inserted when the catalog
// store starts empty. Prices are in CLP.
func bootstrapProducts() []models.Product {
	return []models.Product{
		{
			Name:        "Mouse Gamer RGB",
			Price:       29990,
			Category:    "Mouses",
			Description: "Mouse gaming con iluminación RGB y 8000 DPI",
			Stock:       15,
			ImageURL:    "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQypdMCkIlcsSTW0VrrGG9iPtRJxmJT_Fviaw&s",
		},
		{
			Name:        "Teclado Mecánico",
			Price:       49990,
			Category:    "Accesorios",
			Description: "Teclado mecánico con switches RGB",
			Stock:       8,
			ImageURL:    "https://rimage.ripley.cl/home.ripley/Attachment/MKP/6787/MPM00082167014/full_image-1.png",
		},
		{
			Name:        "PlayStation 5",
			Price:       499990,
			Category:    "Consolas",
			Description: "Consola PlayStation 5 con control DualSense",
			Stock:       3,
			ImageURL:    "https://www.facilitea.com/on/demandware.static/-/Sites-promocaixa-m-catalog/default/dw33be0a78/electronica/Gaming/Consolas/121-4007379/121-4007379_1_600x600.png",
		},
		{
			Name:        "PC Gamer RTX 4060",
			Price:       899990,
			Category:    "PC gamers",
			Description: "PC gaming con RTX 4060, 16GB RAM, SSD 512GB",
			Stock:       5,
			ImageURL:    "https://cdnx.jumpseller.com/lotendras-cl/image/49894670/thumb/719/719?1755816987",
		},
		{
			Name:        "Silla Gamer Ergonómica",
			Price:       149990,
			Category:    "Sillas gamers",
			Description: "Silla gaming con soporte lumbar y reposabrazos ajustables",
			Stock:       10,
			ImageURL:    "https://cdnx.jumpseller.com/hypelegend/image/15690436/WHITE-RGB.png?1701708440",
		},
		{
			Name:        "Mousepad RGB XL",
			Price:       19990,
			Category:    "Mousepad",
			Description: "Mousepad gaming con iluminación RGB y tamaño XL",
			Stock:       20,
			ImageURL:    "https://trulustore.cl/wp-content/uploads/2025/03/frontline_xl_pd_2000x2000_01.png",
		},
		{
			Name:        "Polera LevelUp Gamer",
			Price:       14990,
			Category:    "Poleras personalizadas",
			Description: "Polera personalizada con logo LevelUp Gamer",
			Stock:       25,
			ImageURL:    "https://themadplug.es/cdn/shop/files/Corteiz-Island-Stencil-Tee-Black-Photoroom_ad925fba-9741-4edf-a0af-8e9277f5067d.png?v=1725388998",
		},
		{
			Name:        "Ajedrez",
			Price:       24990,
			Category:    "Juegos de mesa",
			Description: "Set de ajedrez temático gaming",
			Stock:       12,
			ImageURL:    "https://recrearte.cl/cdn/shop/products/AjedrezTableropiezasmaderaBlancoyNegro2_aaf8aa03-eea2-4971-b66e-0ee2d6dbf962_1080x.png?v=1620000149",
		},
	}
}
