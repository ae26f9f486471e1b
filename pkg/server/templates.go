package server

// Reply templates assembled server-side. The production backend feeds the
// masked request through an LLM; the stub renders these deterministically.

type replyTemplateData struct {
	Excerpt string
	Phone   string
	Org     string
}

const shortReplyTemplate = `Уважаемый заявитель!

В ответ на Ваше обращение («{{.Excerpt}}») сообщаем, что по указанному адресу проведена проверка. Выявленные замечания устранены в установленный срок.

При возникновении дополнительных вопросов обращайтесь по тел. {{.Phone}}.

С уважением,
{{.Org}}`

const officialReplyTemplate = `Уважаемый заявитель!

Настоящим сообщаем, что Ваше обращение зарегистрировано и рассмотрено.

В соответствии с п. 15 Постановления Правительства РФ от 06.05.2011 № 354 управляющая организация обязана обеспечивать предоставление коммунальных услуг надлежащего качества.

По существу обращения («{{.Excerpt}}») проведена выездная проверка; мероприятия по устранению выполнены в срок, установленный регламентом. Оснований для признания претензии обоснованной не имеется.

Контактный телефон: {{.Phone}}
{{.Org}}`

const supervisionReplyTemplate = `По результатам рассмотрения предписания сообщаем следующее.

Управляющая организация провела проверку по всем указанным требованиям. Выявленные замечания устранены либо находятся в стадии устранения в установленные сроки; подтверждающие документы прилагаются.

Фрагмент предписания, по которому подготовлен ответ:
{{.Excerpt}}`
