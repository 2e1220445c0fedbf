package core

// Preset is a templated analysis prompt offered on the analysis page.
type Preset struct {
	Title       string
	Description string
	Prompt      string
}

var Presets = []Preset{
	{
		Title:       "Análise Preditiva",
		Description: "Preveja tendências futuras com modelos de machine learning",
		Prompt:      "Faça uma análise preditiva dos dados dos contratos, identificando possíveis tendências futuras.",
	},
	{
		Title:       "Análise Estatística",
		Description: "Obtenha insights estatísticos detalhados dos seus dados",
		Prompt:      "Realize uma análise estatística detalhada dos contratos, mostrando médias, medianas e distribuições importantes.",
	},
	{
		Title:       "Análise de Tendências",
		Description: "Identifique padrões e tendências nos seus dados",
		Prompt:      "Identifique os principais padrões e tendências nos dados dos contratos ao longo do tempo.",
	},
	{
		Title:       "Análise de Correlação",
		Description: "Descubra relações entre diferentes variáveis",
		Prompt:      "Analise as correlações entre diferentes aspectos dos contratos, como duração, valor e modalidade.",
	},
}
