package llm

import "fmt"

// sectorPromptTemplate asks for a comprehensive Italian-language sector
// analysis with bold-marked key concepts, which downstream graph
// extraction depends on.
const sectorPromptTemplate = `Analizza questa richiesta su startup, tecnologia e business: "%s"

Fornisci un'analisi comprensiva che includa:
1. **Concetti chiave** ed entità principali (marca con **)
2. **Trend di mercato** attuali e emergenti
3. **Tecnologie** innovative del settore
4. **Opportunità di business** e modelli
5. **Panorama dei finanziamenti** e investimenti
6. **Considerazioni geografiche** e mercati principali
7. **Player chiave** e startup innovative
8. **Sfide** e barriere del settore

Adatta l'analisi al settore specifico richiesto. Esempi:
- **Fintech**: pagamenti, DeFi, RegTech, InsurTech, lending, crypto
- **Healthtech**: diagnostica AI, telemedicina, biotech, farmaceutica digitale
- **Mobility**: veicoli elettrici, mobilità condivisa, autonomous driving, logistica
- **Cleantech**: energie rinnovabili, storage, efficienza energetica, carbon capture
- **AI/ML**: computer vision, NLP, robotica, edge computing, quantum
- **Edtech**: e-learning, VR/AR education, skill assessment, corporate training
- **Foodtech**: agricoltura digitale, alternative proteins, food delivery, sostenibilità
- **Proptech**: smart buildings, real estate digitale, property management
- **Gaming**: esports, metaverso, Web3 gaming, mobile gaming
- **Fashion**: moda sostenibile, e-commerce fashion, manufacturing digitale

Concentrati su insights azionabili, pattern emergenti e dati specifici del settore.
Risposta massimo 500 parole in italiano.`

// SectorPrompt builds the sector analysis prompt for a user query.
func SectorPrompt(query string) string {
	return fmt.Sprintf(sectorPromptTemplate, query)
}

// HealthPrompt is the minimal prompt used to probe provider liveness.
const HealthPrompt = "Say 'OK' if you're working"
