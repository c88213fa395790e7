package config

type WorkerKeyStruct struct {
	ResultEmailQueue string
}

var WorkerKey = &WorkerKeyStruct{
	ResultEmailQueue: "result_email_queue",
}
