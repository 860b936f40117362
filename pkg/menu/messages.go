package menu

import "fmt"

// Messages is a catalog of texts shown by the menu
type Messages struct {
	Labels       [5]string // field labels in display order
	Prompt       string
	EmptyField   string
	WrongFormat  string
	Incomplete   string
	InvalidInput string
}

// Russian catalog
var Russian = Messages{
	Labels: [5]string{
		"Название Чата:",
		"Префикс:",
		"Термины (ввод через запятую):",
		"Дата начала (дд.мм.гггг):",
		"Дата окончания (дд.мм.гггг):",
	},
	Prompt:       "Нажмите enter для запуска, list для вывода текущих настроек, или номер параметра для изменения",
	EmptyField:   "Поле не должно быть пустым",
	WrongFormat:  "Неверный формат",
	Incomplete:   "Не все настройки были введены",
	InvalidInput: "Некорректный ввод",
}

// English catalog
var English = Messages{
	Labels: [5]string{
		"Chat name:",
		"Prefix:",
		"Keywords (comma separated):",
		"Date from (dd.mm.yyyy):",
		"Date to (dd.mm.yyyy):",
	},
	Prompt:       "Press enter to run, list to show current settings, or a field number to edit",
	EmptyField:   "Field must not be empty",
	WrongFormat:  "Wrong format",
	Incomplete:   "Not all settings provided",
	InvalidInput: "Invalid input",
}

// MessagesFor returns the catalog for a language code, ru or en
func MessagesFor(lang string) (Messages, error) {
	switch lang {
	case "", "ru":
		return Russian, nil
	case "en":
		return English, nil
	default:
		return Messages{}, fmt.Errorf("unsupported language %q", lang)
	}
}
