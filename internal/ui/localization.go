package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyEnterWord         = "enter_word"
	KeyGetDefinition     = "get_definition"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyDictionary        = "dictionary"
	KeyShowSidePanel     = "show_side_panel"
	KeyHeadwords         = "headwords"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyPleaseEnterWord   = "please_enter_word"
	KeyLookingUp         = "looking_up"
	KeyLookupInProgress  = "lookup_in_progress"
	KeyNoEntries         = "no_entries"
	KeyDidYouMean        = "did_you_mean"
	KeyNetworkError      = "network_error"
	KeyUnexpectedReply   = "unexpected_reply"
	KeyLookupFailed      = "lookup_failed"
	KeyNoDefinitions     = "no_definitions"
	KeyInterfaceSettings = "interface_settings"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key used as a format string
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Vocabulary Trainer",
		KeyEnterWord:         "Enter a word to look up",
		KeyGetDefinition:     "Get the definition!",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyDictionary:        "Dictionary",
		KeyShowSidePanel:     "Show headword panel",
		KeyHeadwords:         "Headwords",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyPleaseEnterWord:   "Please enter a word",
		KeyLookingUp:         "Looking up %q...",
		KeyLookupInProgress:  "A lookup is already in progress",
		KeyNoEntries:         "No entries found for %q",
		KeyDidYouMean:        "Did you mean: %s",
		KeyNetworkError:      "Network error",
		KeyUnexpectedReply:   "Unexpected reply from the dictionary",
		KeyLookupFailed:      "Lookup failed",
		KeyNoDefinitions:     "No definitions",
		KeyInterfaceSettings: "Interface Settings",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Тренажёр словарного запаса",
		KeyEnterWord:         "Введите слово для поиска",
		KeyGetDefinition:     "Получить определение!",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyDictionary:        "Словарь",
		KeyShowSidePanel:     "Показывать панель заглавных слов",
		KeyHeadwords:         "Заглавные слова",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyPleaseEnterWord:   "Пожалуйста, введите слово",
		KeyLookingUp:         "Поиск %q...",
		KeyLookupInProgress:  "Поиск уже выполняется",
		KeyNoEntries:         "Статьи для %q не найдены",
		KeyDidYouMean:        "Возможно, вы имели в виду: %s",
		KeyNetworkError:      "Ошибка сети",
		KeyUnexpectedReply:   "Неожиданный ответ словаря",
		KeyLookupFailed:      "Ошибка поиска",
		KeyNoDefinitions:     "Нет определений",
		KeyInterfaceSettings: "Настройки интерфейса",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Treinador de Vocabulário",
		KeyEnterWord:         "Digite uma palavra para pesquisar",
		KeyGetDefinition:     "Obter a definição!",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyDictionary:        "Dicionário",
		KeyShowSidePanel:     "Mostrar painel de verbetes",
		KeyHeadwords:         "Verbetes",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyPleaseEnterWord:   "Por favor, digite uma palavra",
		KeyLookingUp:         "Pesquisando %q...",
		KeyLookupInProgress:  "Uma pesquisa já está em andamento",
		KeyNoEntries:         "Nenhum verbete encontrado para %q",
		KeyDidYouMean:        "Você quis dizer: %s",
		KeyNetworkError:      "Erro de rede",
		KeyUnexpectedReply:   "Resposta inesperada do dicionário",
		KeyLookupFailed:      "Falha na pesquisa",
		KeyNoDefinitions:     "Sem definições",
		KeyInterfaceSettings: "Configurações da Interface",
	}
}
