package models

import "time"

// DefaultDisplayName is the acting user shown until the office sets its own.
const DefaultDisplayName = "Dra. Ana Beatriz Castellucci"

// InitialClients is the compiled-in client dataset used when the store has no
// clients key or its contents cannot be read.
func InitialClients() []Client {
	return []Client{
		{
			ID:       "1",
			Name:     "Indústrias Metalúrgicas Silva",
			Email:    "contato@ims.ind.br",
			Phone:    "(11) 3344-5566",
			Type:     ClientPessoaJuridica,
			Document: "12.345.678/0001-99",
		},
		{
			ID:       "2",
			Name:     "Mikael Santos",
			Email:    "mikael.santos@email.com",
			Phone:    "(11) 98765-4321",
			Type:     ClientPessoaFisica,
			Document: "123.456.789-00",
		},
		{
			ID:       "3",
			Name:     "Mariana Oliveira",
			Email:    "mari.oliveira@email.com",
			Phone:    "(21) 99888-7777",
			Type:     ClientPessoaFisica,
			Document: "987.654.321-11",
		},
		{
			ID:       "4",
			Name:     "Tech Solutions LTDA",
			Email:    "financeiro@techsolutions.com",
			Phone:    "(48) 3030-2020",
			Type:     ClientPessoaJuridica,
			Document: "98.765.432/0001-22",
		},
		{
			ID:       "5",
			Name:     "João da Silva",
			Email:    "joao.silva@email.com",
			Phone:    "(31) 91234-5678",
			Type:     ClientPessoaFisica,
			Document: "111.222.333-44",
		},
	}
}

// InitialServiceOrders is the compiled-in order dataset used when the store
// has no orders key or its contents cannot be read.
func InitialServiceOrders() []ServiceOrder {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return []ServiceOrder{
		{
			ID:            "1",
			OSNumber:      "OS-2024-001",
			ClientName:    "Indústrias Metalúrgicas Silva",
			LegalArea:     AreaTrabalhista,
			Description:   "Ação trabalhista movida por ex-funcionário alegando insalubridade e horas extras não pagas.",
			Strategy:      "Contestar o laudo pericial técnico apresentado. Reunir cartões de ponto e testemunhas sobre o uso de EPIs.",
			Methods:       "Reunião com RH, levantamento de documentação técnica, solicitação de assistente técnico.",
			Deadlines:     "Contestação até 15/11/2024",
			Status:        StatusEmAndamento,
			Responsible:   "Dr. Rodrigo Moraes",
			InternalNotes: "Cliente preocupado com o impacto financeiro. Prioridade alta.",
			Value:         15000.00,
			History: []LogEntry{
				{ID: "h1", Date: "2024-10-01", User: "Dr. Rodrigo", Action: "OS Criada"},
				{ID: "h2", Date: "2024-10-05", User: "Secretaria", Action: "Documentos recebidos"},
			},
			CreatedAt: day(2024, time.October, 1),
			UpdatedAt: day(2024, time.October, 5),
		},
		{
			ID:            "2",
			OSNumber:      "OS-2024-002",
			ClientName:    "Mariana Oliveira",
			LegalArea:     AreaCivel,
			Description:   "Processo de divórcio litigioso com disputa de guarda e bens.",
			Strategy:      "Buscar mediação inicial para acordo sobre a guarda. Inventariar bens ocultos.",
			Methods:       "Pedido de quebra de sigilo bancário. Reunião de mediação agendada.",
			Deadlines:     "Audiência de conciliação 20/11/2024",
			Status:        StatusAguardandoDocs,
			Responsible:   "Dra. Ana Beatriz Castellucci",
			InternalNotes: "Cliente muito abalada emocionalmente. Tratar com cautela.",
			Value:         8500.00,
			History: []LogEntry{
				{ID: "h3", Date: "2024-10-10", User: "Dra. Ana", Action: "OS Criada"},
			},
			CreatedAt: day(2024, time.October, 10),
			UpdatedAt: day(2024, time.October, 10),
		},
		{
			ID:            "3",
			OSNumber:      "OS-2024-003",
			ClientName:    "Tech Solutions LTDA",
			LegalArea:     AreaTributario,
			Description:   "Autuação fiscal referente a ICMS em operações interestaduais.",
			Strategy:      "Impugnação administrativa demonstrando a bitributação indevida.",
			Methods:       "Análise contábil, elaboração de defesa administrativa.",
			Deadlines:     "Defesa Adm. até 30/10/2024",
			Status:        StatusAberta,
			Responsible:   "Dr. Rodrigo Moraes",
			InternalNotes: "Valor da causa alto. Requer atenção dos sócios.",
			Value:         45000.00,
			History:       []LogEntry{},
			CreatedAt:     day(2024, time.October, 15),
			UpdatedAt:     day(2024, time.October, 15),
		},
		{
			ID:            "4",
			OSNumber:      "OS-2024-004",
			ClientName:    "João da Silva",
			LegalArea:     AreaPrevidenciario,
			Description:   "Solicitação de aposentadoria por tempo de contribuição indeferida pelo INSS.",
			Strategy:      "Ajuizar ação federal para reconhecimento de tempo rural.",
			Methods:       "Coleta de provas materiais de atividade rural.",
			Deadlines:     "Sem prazo fatal imediato",
			Status:        StatusConcluida,
			Responsible:   "Dra. Ana Beatriz Castellucci",
			InternalNotes: "Caso de sucesso provável.",
			Value:         5000.00,
			History: []LogEntry{
				{ID: "h4", Date: "2024-09-01", User: "Dr. Rodrigo", Action: "OS Criada"},
				{ID: "h5", Date: "2024-10-20", User: "Dra. Ana", Action: "Sentença favorável"},
			},
			CreatedAt: day(2024, time.September, 1),
			UpdatedAt: day(2024, time.October, 20),
		},
	}
}
