package server

import "github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"

// Reference dataset served by the stub backend. Mirrors the product's demo
// fixtures; the generate endpoints combine these with the real masked input.

var fixtureRAGResults = []models.RAGResult{
	{ID: 1, Title: "Шаблон: Жалобы на отопление", Similarity: 0.94, Source: "База знаний УК"},
	{ID: 2, Title: "Прецедент №2024-156", Similarity: 0.87, Source: "История обращений"},
	{ID: 3, Title: "ПП РФ №354, п. 15", Similarity: 0.82, Source: "Нормативные документы"},
}

var fixtureLegalSources = []models.LegalSource{
	{
		ID:        "1",
		Title:     "ЖК РФ, Статья 153",
		Type:      models.LegalSourceLaw,
		Citation:  "Ст. 153 ЖК РФ",
		Relevance: 0.98,
		Content:   "Плата за жилое помещение и коммунальные услуги вносится ежемесячно до 10-го числа...",
	},
	{
		ID:        "2",
		Title:     "ПП РФ №354, Пункт 42",
		Type:      models.LegalSourceLaw,
		Citation:  "п. 42 ПП №354",
		Relevance: 0.95,
		Content:   "Исполнитель обязан обеспечить предоставление коммунальных услуг надлежащего качества...",
	},
	{
		ID:        "3",
		Title:     "Судебная практика: АС Города Москвы",
		Type:      models.LegalSourcePractice,
		Citation:  "Дело А40-123456/2023",
		Relevance: 0.87,
		Content:   "Управляющая организация освобождена от ответственности при документальном подтверждении...",
	},
}

var fixtureLegalRisks = []models.RiskAssessment{
	{
		Level:          models.RiskMedium,
		Category:       "Просрочка платежа",
		Description:    "Задолженность образовалась менее 3 месяцев назад",
		Recommendation: "Направьте претензию с расчетом задолженности по форме",
	},
	{
		Level:          models.RiskLow,
		Category:       "Документальное подтверждение",
		Description:    "Все работы задокументированы актами выполненных работ",
		Recommendation: "Акты готовы к предоставлению в суд при необходимости",
	},
}

var fixtureAuditChecks = []models.AuditCheck{
	{ID: 1, Check: "Отсутствие признания вины", Status: models.AuditPassed},
	{ID: 2, Check: "Соблюдение процедуры", Status: models.AuditPassed},
	{ID: 3, Check: "Правильные ссылки на нормы", Status: models.AuditWarning},
	{ID: 4, Check: "Сроки ответа соблюдены", Status: models.AuditPassed},
}

var fixtureUsers = []models.User{
	{ID: "1", Name: "Иванов А.П.", Email: "ivanov@uk.ru", Role: models.RoleAdmin, Status: models.UserActive, LastActive: "2 мин назад"},
	{ID: "2", Name: "Петрова М.С.", Email: "petrova@uk.ru", Role: models.RoleEmployee, Status: models.UserActive, LastActive: "1 час назад"},
	{ID: "3", Name: "Сидоров К.В.", Email: "sidorov@uk.ru", Role: models.RoleEmployee, Status: models.UserInactive, LastActive: "3 дня назад"},
}

var fixtureLLMSettings = models.LLMSettings{
	Provider:    "deepseek",
	Model:       "deepseek-chat",
	Temperature: 0.7,
	MaxTokens:   2048,
}

var fixtureOrgSettings = models.OrganizationSettings{
	Name:               "УК «ЖилКомфорт»",
	INN:                "7701234567",
	Address:            "г. Москва, ул. Строителей, д. 7",
	Phone:              "+7 (495) 123-45-67",
	Email:              "info@zhilkomfort.ru",
	AutoSignature:      true,
	EmailNotifications: true,
}

var fixtureDashboardStats = models.DashboardStats{
	ProcessedRequests:    1247,
	GeneratedResponses:   892,
	LegalConsultations:   156,
	SupervisionResponses: 34,
	RequestsChange:       "+12%",
	ResponsesChange:      "+8%",
	LegalChange:          "+23%",
	SupervisionChange:    "-5%",
}
