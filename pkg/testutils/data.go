package testutils

// Sample resident requests with personal data, used across masking and
// pipeline tests.
var (
	RequestWithPhone = "Здравствуйте! В квартире 15 по адресу ул. Ленина, д. 10 третий день нет горячей воды. " +
		"Позвоните мне по номеру +7 (916) 123-45-67."

	RequestWithEmailAndPhone = "Прошу разобраться с начислениями за отопление. " +
		"Ответ направьте на ivanov@example.com или по телефону 8 916 123-45-67."

	RequestWithPassport = "Для переоформления лицевого счёта прилагаю паспорт 4509 123456."

	RequestWithoutPII = "Когда начнётся отопительный сезон в нашем доме?"
)

// SupervisionOrderText is a minimal supervisory order body for analyzer tests.
var SupervisionOrderText = "ПРЕДПИСАНИЕ № 123-П\n" +
	"Устранить нарушение температурного режима горячего водоснабжения в МКД по ул. Ленина, д. 10.\n" +
	"Провести промывку системы отопления до начала отопительного сезона.\n" +
	"Представить подтверждающие документы в надзорный орган.\n"
