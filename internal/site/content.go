package site

import "cwdp/internal/models"

type Service struct {
	Icon        models.IconName
	Title       string
	Description string
	Features    []string
}

type Pillar struct {
	Title       string
	Description string
}

var serviceCards = []Service{
	{
		Icon:        models.IconBuilding2,
		Title:       "Construção Civil",
		Description: "Realizamos obras completas, desde a fundação até o acabamento final. Atuamos com construção do zero, reformas, ampliações e melhorias em estruturas existentes.",
		Features:    []string{"Construção do zero", "Reformas e ampliações", "Estruturas residenciais", "Projetos comerciais"},
	},
	{
		Icon:        models.IconZap,
		Title:       "Instalações Elétricas",
		Description: "Executamos projetos elétricos completos, desde a montagem de quadros até a instalação de sistemas de iluminação e segurança com máxima eficiência.",
		Features:    []string{"Quadros elétricos", "Sistema de iluminação", "Instalações segurança", "Manutenções elétricas"},
	},
	{
		Icon:        models.IconWrench,
		Title:       "Manutenção",
		Description: "Oferecemos manutenção preventiva e corretiva para garantir o bom funcionamento de sistemas elétricos e estruturas com agilidade e segurança.",
		Features:    []string{"Manutenção preventiva", "Reparos emergenciais", "Diagnóstico técnico", "Atendimento 24h"},
	},
}

var pillars = []Pillar{
	{"Missão", "Atuar como referência no setor da construção civil, oferecendo soluções personalizadas e de excelência, com foco em resultados e total adequação às necessidades de cada cliente."},
	{"Visão", "Ser reconhecida em Portugal e na União Europeia como uma referência em construção civil, destacando-se pela excelência técnica e capacidade de adaptação a qualquer desafio."},
	{"Valores", "Agimos com base em princípios éticos, reconhecendo que cada talento e conquista vêm de dedicação, buscando exercer nossa profissão com propósito e serviço ao próximo."},
}

var achievements = []string{
	"15+ anos de experiência comprovada",
	"40+ profissionais qualificados",
	"Atuação em toda União Europeia",
	"Escritório técnico especializado",
	"Compromisso com prazos e qualidade",
	"Soluções personalizadas",
}

// defaultStats are shown when no stat is stored or the stats cannot be
// loaded.
var defaultStats = []models.Stat{
	{IconName: models.IconBuilding2, Number: 150, Label: "Projetos Realizados", Suffix: "+"},
	{IconName: models.IconAward, Number: 50000, Label: "Metros Construídos", Suffix: "+"},
	{IconName: models.IconUsers, Number: 40, Label: "Especialistas", Suffix: "+"},
	{IconName: models.IconWrench, Number: 200, Label: "Projetos Entregues", Suffix: "+"},
}

var defaultSettings = models.Settings{
	models.SettingCompanyName:           "CWDP",
	models.SettingCompanySubtitle:       "Construção Civil",
	models.SettingContactPhone1:         "+351 910 375 217",
	models.SettingContactPhone2:         "+34 614 607 639",
	models.SettingContactEmail1:         "contato@cwdp.pt",
	models.SettingCompanyAddress:        "Rua Dom Dinis, Qta Dálias, 1685-229 Famões",
	models.SettingBusinessHoursWeekdays: "Seg - Sex: 08:00 - 18:00",
	models.SettingBusinessHoursSaturday: "Sáb: 08:00 - 13:00",
	models.SettingStatsTitle:            "Números que Falam por Si",
	models.SettingStatsDescription:      "Mais de 15 anos a transformar projetos em realidade.",
}

var serviceOptions = []string{"Construção Civil", "Remodelação", "Pintura e Acabamentos", "Sistema Capoto", "Telhados"}

var budgetOptions = []string{"Menos de €10.000", "€10.000 - €25.000", "€25.000 - €50.000", "€50.000 - €100.000", "Mais de €100.000"}

var timelineOptions = []string{"Urgente (1-2 meses)", "Curto Prazo (3-6 meses)", "Médio Prazo (6-12 meses)", "Flexível"}

var howFoundOptions = []string{"Google", "Redes Sociais", "Indicação", "Outdoor/Publicidade"}
