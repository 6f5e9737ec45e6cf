package models

// ulimaTaxonomy is the institutional hierarchy defined by ULIMA.
// It does not depend on workbook contents.
var ulimaTaxonomy = Taxonomy{
	{
		Name: "INNOVACIÓN Y TECNOLOGÍA DIGITAL",
		Lineas: []Linea{
			{Name: "Inteligencia artificial y computación avanzada", Sublineas: []string{
				"Machine learning y deep learning",
				"Procesamiento de lenguaje natural",
				"Visión computacional",
				"Sistemas autónomos y robótica",
			}},
			{Name: "Transformación digital", Sublineas: []string{
				"Tecnologías emergentes",
				"Ciberseguridad y privacidad",
				"Internet de las cosas (IoT)",
				"Computación cuántica",
				"Diseño y construcción virtual",
			}},
			{Name: "Experiencia digital humana", Sublineas: []string{
				"Interacción humano-computadora",
				"Realidad virtual y aumentada",
				"Diseño de interfaces adaptativas",
			}},
		},
	},
	{
		Name: "DESARROLLO SOSTENIBLE Y MEDIOAMBIENTE",
		Lineas: []Linea{
			{Name: "Sostenibilidad y cambio climático", Sublineas: []string{
				"Energías renovables",
				"Economía circular",
				"Gestión sostenible de recursos",
				"Adaptación al cambio climático",
			}},
			{Name: "Ciudades inteligentes y sostenibles", Sublineas: []string{
				"Urbanismo sostenible",
				"Movilidad urbana",
				"Infraestructura sostenible",
				"Gestión inteligente de recursos",
			}},
			{Name: "Tecnología y ecosistemas", Sublineas: []string{
				"Tecnologías limpias",
				"Biodiversidad y conservación",
				"Gestión de residuos",
				"Materiales avanzados",
			}},
		},
	},
	{
		Name: "SOCIEDAD Y COMPORTAMIENTO HUMANO",
		Lineas: []Linea{
			{Name: "Bienestar y desarrollo humano", Sublineas: []string{
				"Salud mental y bienestar",
				"Educación, desarrollo cognitivo y socioafectivo",
				"Comportamiento social",
				"Mujer, cultura y sociedad",
				"Pobreza e informalidad",
			}},
			{Name: "Comunicación y cultura digital", Sublineas: []string{
				"Medios digitales y sociedad",
				"Comunicación intercultural",
				"Narrativas transmedia",
				"Comportamiento digital",
			}},
			{Name: "Ética, gobernanza y responsabilidad social", Sublineas: []string{
				"Ética y gobernanza",
				"Responsabilidad social",
				"Derechos humanos y tecnología",
			}},
		},
	},
	{
		Name: "GESTIÓN Y ECONOMÍA DEL CONOCIMIENTO",
		Lineas: []Linea{
			{Name: "Innovación empresarial", Sublineas: []string{
				"Modelos de negocio digitales",
				"Emprendimiento tecnológico",
				"Gestión de la innovación",
				"Transformación organizacional",
			}},
			{Name: "Economía digital", Sublineas: []string{
				"Fintech y servicios financieros",
				"Mercados globales",
				"Análisis de datos económicos",
				"Economía de plataformas",
			}},
			{Name: "Gestión del conocimiento", Sublineas: []string{
				"Gestión del capital intelectual",
				"Aprendizaje organizacional",
				"Transferencia de conocimiento",
				"Inteligencia de negocios",
			}},
		},
	},
}

// ULIMATaxonomy returns a copy of the ULIMA taxonomy.
func ULIMATaxonomy() Taxonomy {
	return ulimaTaxonomy.Clone()
}
