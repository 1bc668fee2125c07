package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type ReminderEmailData struct {
	ProspectName string
	TouchName    string
	Due          string
}
