package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Tahfidz API",
        "description": "Checkpoint progression and semester report engine for Quran memorisation programmes",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {
            "name": "Learners",
            "description": "Learner enrollment"
        },
        {
            "name": "Records",
            "description": "Recitation, evaluation and attendance intake"
        },
        {
            "name": "Checkpoints",
            "description": "Staged checkpoint exams"
        },
        {
            "name": "SemesterReports",
            "description": "Semester report generation and follow-up"
        },
        {
            "name": "Progress",
            "description": "Learner progress dashboard"
        }
    ],
    "paths": {
        "/learners": {
            "get": {
                "tags": [
                    "Learners"
                ],
                "summary": "List learners",
                "parameters": [
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "groupId",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "ACTIVE",
                            "INACTIVE"
                        ]
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "sort",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "order",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Learners"
                ],
                "summary": "Enroll learner",
                "parameters": [
                    {
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Acting examiner or staff id"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateLearnerRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Actor header missing",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/learners/{id}": {
            "get": {
                "tags": [
                    "Learners"
                ],
                "summary": "Get learner",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Learner ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/learners/{id}/status": {
            "patch": {
                "tags": [
                    "Learners"
                ],
                "summary": "Activate or deactivate learner",
                "parameters": [
                    {
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Acting examiner or staff id"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Learner ID"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateLearnerStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/learners/{id}/recitations": {
            "get": {
                "tags": [
                    "Records"
                ],
                "summary": "List recitation sessions",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Learner ID"
                    },
                    {
                        "name": "from",
                        "in": "query",
                        "type": "string",
                        "format": "date"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "type": "string",
                        "format": "date"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/learners/{id}/evaluations": {
            "get": {
                "tags": [
                    "Records"
                ],
                "summary": "List evaluations",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Learner ID"
                    },
                    {
                        "name": "from",
                        "in": "query",
                        "type": "string",
                        "format": "date"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "type": "string",
                        "format": "date"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/learners/{id}/attendance": {
            "get": {
                "tags": [
                    "Records"
                ],
                "summary": "List attendance",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Learner ID"
                    },
                    {
                        "name": "from",
                        "in": "query",
                        "type": "string",
                        "format": "date"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "type": "string",
                        "format": "date"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/learners/{id}/attendance/summary": {
            "get": {
                "tags": [
                    "Records"
                ],
                "summary": "Attendance counts per status",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Learner ID"
                    },
                    {
                        "name": "from",
                        "in": "query",
                        "type": "string",
                        "format": "date"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "type": "string",
                        "format": "date"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/learners/{id}/checkpoints": {
            "get": {
                "tags": [
                    "Checkpoints"
                ],
                "summary": "Checkpoint exam history, newest first",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Learner ID"
                    },
                    {
                        "name": "from",
                        "in": "query",
                        "type": "string",
                        "format": "date"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "type": "string",
                        "format": "date"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/learners/{id}/checkpoints/eligibility": {
            "get": {
                "tags": [
                    "Checkpoints"
                ],
                "summary": "Check stage eligibility",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Learner ID"
                    },
                    {
                        "name": "stage",
                        "in": "query",
                        "required": true,
                        "type": "integer",
                        "minimum": 1,
                        "maximum": 5
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/learners/{id}/semester-reports": {
            "get": {
                "tags": [
                    "SemesterReports"
                ],
                "summary": "List a learner's semester reports",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Learner ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/learners/{id}/progress": {
            "get": {
                "tags": [
                    "Progress"
                ],
                "summary": "Learner progress dashboard",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Learner ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/recitations": {
            "post": {
                "tags": [
                    "Records"
                ],
                "summary": "Record a recitation session",
                "parameters": [
                    {
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Acting examiner or staff id"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateRecitationRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Actor header missing",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/evaluations": {
            "post": {
                "tags": [
                    "Records"
                ],
                "summary": "Record an evaluation",
                "parameters": [
                    {
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Acting examiner or staff id"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateEvaluationRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Actor header missing",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/attendance": {
            "post": {
                "tags": [
                    "Records"
                ],
                "summary": "Record attendance for a day",
                "parameters": [
                    {
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Acting examiner or staff id"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/RecordAttendanceRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Actor header missing",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/checkpoints": {
            "post": {
                "tags": [
                    "Checkpoints"
                ],
                "summary": "Record a checkpoint exam",
                "parameters": [
                    {
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Acting examiner or staff id"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/RecordCheckpointRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Actor header missing",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "422": {
                        "description": "Not eligible",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/checkpoints/{id}": {
            "delete": {
                "tags": [
                    "Checkpoints"
                ],
                "summary": "Delete a checkpoint exam",
                "parameters": [
                    {
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Acting examiner or staff id"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Exam ID"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/semester-reports": {
            "post": {
                "tags": [
                    "SemesterReports"
                ],
                "summary": "Generate one semester report",
                "parameters": [
                    {
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Acting examiner or staff id"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/GenerateSemesterReportRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Actor header missing",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/semester-reports/bulk": {
            "post": {
                "tags": [
                    "SemesterReports"
                ],
                "summary": "Generate reports for every active learner",
                "parameters": [
                    {
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Acting examiner or staff id"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/BulkSemesterReportRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Actor header missing",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/semester-reports/bulk/jobs": {
            "post": {
                "tags": [
                    "SemesterReports"
                ],
                "summary": "Queue a bulk run",
                "parameters": [
                    {
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Acting examiner or staff id"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/BulkSemesterReportRequest"
                        }
                    }
                ],
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Actor header missing",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Unavailable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/semester-reports/bulk/jobs/{id}": {
            "get": {
                "tags": [
                    "SemesterReports"
                ],
                "summary": "Get a queued bulk run",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Job ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Unavailable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/semester-reports/{id}": {
            "get": {
                "tags": [
                    "SemesterReports"
                ],
                "summary": "Get a semester report",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Report ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "SemesterReports"
                ],
                "summary": "Edit achievements, examiner comment and recommendation",
                "parameters": [
                    {
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Acting examiner or staff id"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Report ID"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateReportNarrativeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "SemesterReports"
                ],
                "summary": "Delete a semester report",
                "parameters": [
                    {
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Acting examiner or staff id"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Report ID"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/semester-reports/{id}/print": {
            "post": {
                "tags": [
                    "SemesterReports"
                ],
                "summary": "Stamp a report as printed",
                "parameters": [
                    {
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "description": "Acting examiner or staff id"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Report ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "CreateLearnerRequest": {
            "type": "object",
            "required": [
                "name",
                "enrollment_no",
                "group_id",
                "enrolled_at"
            ],
            "properties": {
                "name": {
                    "type": "string"
                },
                "enrollment_no": {
                    "type": "string"
                },
                "group_id": {
                    "type": "string"
                },
                "guardian_id": {
                    "type": "string",
                    "x-nullable": true
                },
                "enrolled_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "UpdateLearnerStatusRequest": {
            "type": "object",
            "required": [
                "status"
            ],
            "properties": {
                "status": {
                    "type": "string",
                    "enum": [
                        "ACTIVE",
                        "INACTIVE"
                    ]
                }
            }
        },
        "CreateRecitationRequest": {
            "type": "object",
            "required": [
                "learner_id",
                "date",
                "juz",
                "verse_range",
                "status"
            ],
            "properties": {
                "learner_id": {
                    "type": "string"
                },
                "date": {
                    "type": "string",
                    "format": "date"
                },
                "juz": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 30
                },
                "verse_range": {
                    "type": "string"
                },
                "fluency": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 100
                },
                "error_count": {
                    "type": "integer",
                    "minimum": 0
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "LANCAR",
                        "ULANG",
                        "BELUM"
                    ]
                },
                "note": {
                    "type": "string",
                    "x-nullable": true
                }
            }
        },
        "CreateEvaluationRequest": {
            "type": "object",
            "required": [
                "learner_id",
                "date"
            ],
            "properties": {
                "learner_id": {
                    "type": "string"
                },
                "date": {
                    "type": "string",
                    "format": "date"
                },
                "tajweed_score": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 100
                },
                "articulation_score": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 100
                },
                "fluency_score": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 100
                },
                "tajweed_note": {
                    "type": "string",
                    "x-nullable": true
                },
                "articulation_note": {
                    "type": "string",
                    "x-nullable": true
                }
            }
        },
        "RecordAttendanceRequest": {
            "type": "object",
            "required": [
                "learner_id",
                "date",
                "status"
            ],
            "properties": {
                "learner_id": {
                    "type": "string"
                },
                "date": {
                    "type": "string",
                    "format": "date"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "H",
                        "I",
                        "S",
                        "A"
                    ]
                },
                "note": {
                    "type": "string",
                    "x-nullable": true
                }
            }
        },
        "RecordCheckpointRequest": {
            "type": "object",
            "required": [
                "learner_id",
                "stage",
                "date",
                "juz",
                "verse_range",
                "outcome"
            ],
            "properties": {
                "learner_id": {
                    "type": "string"
                },
                "stage": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 5
                },
                "date": {
                    "type": "string",
                    "format": "date"
                },
                "juz": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 30
                },
                "verse_range": {
                    "type": "string"
                },
                "total_verses": {
                    "type": "integer",
                    "minimum": 0
                },
                "total_pages": {
                    "type": "integer",
                    "minimum": 0
                },
                "total_lines": {
                    "type": "integer",
                    "minimum": 0
                },
                "fluency": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 100
                },
                "error_count": {
                    "type": "integer",
                    "minimum": 0
                },
                "tajweed_note": {
                    "type": "string",
                    "x-nullable": true
                },
                "articulation_note": {
                    "type": "string",
                    "x-nullable": true
                },
                "outcome": {
                    "type": "string",
                    "enum": [
                        "PASSED",
                        "FAILED"
                    ]
                },
                "verses_to_repeat": {
                    "type": "string",
                    "x-nullable": true
                },
                "note": {
                    "type": "string",
                    "x-nullable": true
                }
            }
        },
        "GenerateSemesterReportRequest": {
            "type": "object",
            "required": [
                "learner_id",
                "academic_year",
                "semester"
            ],
            "properties": {
                "learner_id": {
                    "type": "string"
                },
                "academic_year": {
                    "type": "string",
                    "example": "2024/2025"
                },
                "semester": {
                    "type": "string",
                    "enum": [
                        "ODD",
                        "EVEN"
                    ]
                }
            }
        },
        "BulkSemesterReportRequest": {
            "type": "object",
            "required": [
                "academic_year",
                "semester"
            ],
            "properties": {
                "academic_year": {
                    "type": "string",
                    "example": "2024/2025"
                },
                "semester": {
                    "type": "string",
                    "enum": [
                        "ODD",
                        "EVEN"
                    ]
                },
                "group_id": {
                    "type": "string",
                    "x-nullable": true
                }
            }
        },
        "UpdateReportNarrativeRequest": {
            "type": "object",
            "properties": {
                "achievements": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "examiner_comment": {
                    "type": "string",
                    "x-nullable": true
                },
                "recommendation": {
                    "type": "string",
                    "x-nullable": true
                }
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total_count": {
                    "type": "integer"
                }
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "pagination": {
                    "$ref": "#/definitions/Pagination"
                },
                "meta": {
                    "type": "object"
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
