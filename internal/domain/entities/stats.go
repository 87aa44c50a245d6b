package entities

import "fmt"

// Attributes holds the ten core status values of a character.
type Attributes struct {
	Force           int `json:"force"`
	Intelligence    int `json:"intelligence"`
	Agility         int `json:"agility"`
	Life            int `json:"life"`
	Accuracy        int `json:"accuracy"`
	Mana            int `json:"mana"`
	Stealth         int `json:"stealth"`
	Evasion         int `json:"evasion"`
	PhysicalDefense int `json:"physicalDefense"`
	MagicDefense    int `json:"magicDefense"`
}

// Powers holds the ten power manifestation scores.
type Powers struct {
	Qi       int `json:"qi"`
	Haki     int `json:"haki"`
	Voo      int `json:"voo"`
	Feitico  int `json:"feitico"`
	Reiatsu  int `json:"reiatsu"`
	Nen      int `json:"nen"`
	Alquimia int `json:"alquimia"`
	Cosmo    int `json:"cosmo"`
	Visao    int `json:"visao"`
	Chakra   int `json:"chakra"`
}

// StatInfo describes one named stat for display.
type StatInfo struct {
	Key         string
	Label       string
	Description string
}

// AttributeInfo lists the attributes in sheet order.
var AttributeInfo = []StatInfo{
	{Key: "force", Label: "Força", Description: "Força básica para o movimento e transporte de objetos."},
	{Key: "intelligence", Label: "Inteligência", Description: "Acuidade mental e habilidade analítica."},
	{Key: "agility", Label: "Agilidade", Description: "Reflexos, equilíbrio e estabilidade física."},
	{Key: "life", Label: "Vida", Description: "Saúde, resistência e vitalidade."},
	{Key: "accuracy", Label: "Acuracidade", Description: "Capacidade de acertar alvos com precisão."},
	{Key: "mana", Label: "Mana", Description: "Reserva de energia vital ou mágica."},
	{Key: "stealth", Label: "Furtividade", Description: "Capacidade de agir sem ser detectado e influenciar outros."},
	{Key: "evasion", Label: "Evasão", Description: "Vigilância, intuição e escape de ataques."},
	{Key: "physicalDefense", Label: "Defesa Física", Description: "Bloqueio de golpes físicos e proteção de aliados."},
	{Key: "magicDefense", Label: "Defesa Mágica", Description: "Proteção contra encantamentos e danos psíquicos."},
}

// PowerKeys lists the power manifestations in sheet order.
var PowerKeys = []string{"qi", "haki", "voo", "feitico", "reiatsu", "nen", "alquimia", "cosmo", "visao", "chakra"}

// PowerInfo labels the power manifestations in sheet order.
var PowerInfo = []StatInfo{
	{Key: "qi", Label: "Qi"},
	{Key: "haki", Label: "Haki"},
	{Key: "voo", Label: "Voo"},
	{Key: "feitico", Label: "Feitiço"},
	{Key: "reiatsu", Label: "Reiatsu"},
	{Key: "nen", Label: "Nen"},
	{Key: "alquimia", Label: "Alquimia"},
	{Key: "cosmo", Label: "Cosmo"},
	{Key: "visao", Label: "Visão"},
	{Key: "chakra", Label: "Chakra"},
}

func (a *Attributes) field(key string) (*int, bool) {
	switch key {
	case "force":
		return &a.Force, true
	case "intelligence":
		return &a.Intelligence, true
	case "agility":
		return &a.Agility, true
	case "life":
		return &a.Life, true
	case "accuracy":
		return &a.Accuracy, true
	case "mana":
		return &a.Mana, true
	case "stealth":
		return &a.Stealth, true
	case "evasion":
		return &a.Evasion, true
	case "physicalDefense":
		return &a.PhysicalDefense, true
	case "magicDefense":
		return &a.MagicDefense, true
	}
	return nil, false
}

// Get returns the attribute with the given key.
func (a Attributes) Get(key string) (int, bool) {
	p, ok := a.field(key)
	if !ok {
		return 0, false
	}
	return *p, true
}

// Set changes a single attribute, leaving the others untouched.
func (a *Attributes) Set(key string, value int) error {
	p, ok := a.field(key)
	if !ok {
		return fmt.Errorf("unknown attribute %q", key)
	}
	*p = value
	return nil
}

func (p *Powers) field(key string) (*int, bool) {
	switch key {
	case "qi":
		return &p.Qi, true
	case "haki":
		return &p.Haki, true
	case "voo":
		return &p.Voo, true
	case "feitico":
		return &p.Feitico, true
	case "reiatsu":
		return &p.Reiatsu, true
	case "nen":
		return &p.Nen, true
	case "alquimia":
		return &p.Alquimia, true
	case "cosmo":
		return &p.Cosmo, true
	case "visao":
		return &p.Visao, true
	case "chakra":
		return &p.Chakra, true
	}
	return nil, false
}

// Get returns the power with the given key.
func (p Powers) Get(key string) (int, bool) {
	f, ok := p.field(key)
	if !ok {
		return 0, false
	}
	return *f, true
}

// Set changes a single power score.
func (p *Powers) Set(key string, value int) error {
	f, ok := p.field(key)
	if !ok {
		return fmt.Errorf("unknown power %q", key)
	}
	*f = value
	return nil
}

// Values returns the ten scores in sheet order.
func (p Powers) Values() []int {
	return []int{p.Qi, p.Haki, p.Voo, p.Feitico, p.Reiatsu, p.Nen, p.Alquimia, p.Cosmo, p.Visao, p.Chakra}
}
